package cli

import (
	"os"
	"os/signal"
	"syscall"

	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// без явных флагов формат логов определяется окружением
		flags := cmd.Flags()
		if !flags.Changed("json") && !flags.Changed("debug") {
			logger.Init(cfg.Server.Env)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Starting advisor", "version", version, "env", cfg.Server.Env)
		return app.Run(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
