package cli

import (
	"fmt"
	"os"

	"uniadvisor_backend/internal/config"
	"uniadvisor_backend/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "advisor"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "advisor serves university recommendations and manages the catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logger.InitWith(viper.GetBool("json"), viper.GetBool("debug"))
	},
}

// Execute executes the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "a config file (default is $CONFIG_PATH or config/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	for _, name := range []string{"config", "debug", "json"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "binding --%s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
}

// loadConfig читает конфигурацию с учётом --config
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper(), viper.GetString("config"))
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		fmt.Fprintf(os.Stderr, "binding --%s flag: %v\n", flag, err)
		os.Exit(1)
	}
}
