package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"uniadvisor_backend/database"
	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/repositories"
	"uniadvisor_backend/pkg/apperrors"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Show catalog row counts, sample universities and the last load",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetUint64("limit")
		ctx := cmd.Context()

		gormDB, err := app.OpenDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close(gormDB)

		sqlDB, err := gormDB.DB()
		if err != nil {
			return fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
		}
		repo := repositories.NewCatalogRepository(sqlDB, cfg.Database.Driver)

		counts, err := repo.Counts(ctx)
		if err != nil {
			return err
		}
		sample, err := repo.SampleUniversities(ctx, limit)
		if err != nil {
			return err
		}

		fmt.Printf("Universities: %d\nScholarships: %d\n", counts.Universities, counts.Scholarships)

		load, err := database.LastLoad(ctx, gormDB)
		switch {
		case apperrors.Is(err, gorm.ErrRecordNotFound):
			fmt.Println("Last load: none")
		case err != nil:
			return err
		default:
			fmt.Printf("Last load: %s from %s (event %s)\n", load.LoadedAt.Format("2006-01-02 15:04:05"), load.Source, load.EventID)
			var warnings []string
			if len(load.Warnings) > 0 {
				if err := json.Unmarshal(load.Warnings, &warnings); err != nil {
					return fmt.Errorf("decode load warnings: %w", err)
				}
			}
			fmt.Printf("Skipped rows: %d\n", len(warnings))
			for _, w := range warnings {
				fmt.Println("  -", w)
			}
		}

		fmt.Println()
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "UNIVERSITY\tCOUNTRY\tFIELD\tMIN GPA\tMIN TEST\tFEE")
		for _, u := range sample {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%.1f\t%.0f\n", u.Name, u.Country, u.Field, u.MinGPA, u.MinTestScore, u.AnnualFee)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Uint64("limit", 5, "number of sample universities to print")
}
