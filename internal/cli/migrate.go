package cli

import (
	"context"
	"database/sql"
	"fmt"

	"uniadvisor_backend/database"
	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/config"
	"uniadvisor_backend/internal/events"
	"uniadvisor_backend/internal/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Load the catalog from CSV (local or s3://) into the database and notify running servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		from, _ := cmd.Flags().GetString("from")
		notify, _ := cmd.Flags().GetBool("notify")
		return migrate(cmd.Context(), cfg, from, notify)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("from", config.SourceCSV, "catalog to load: csv or seed")
	migrateCmd.Flags().String("universities", "", "universities CSV, overrides catalog.universities_path")
	migrateCmd.Flags().String("scholarships", "", "scholarships CSV, overrides catalog.scholarships_path")
	migrateCmd.Flags().Bool("notify", true, "announce the new catalog over the configured events transports")

	// пути попадают в ту же конфигурацию, что и у serve
	bindFlag(migrateCmd, "catalog.universities_path", "universities")
	bindFlag(migrateCmd, "catalog.scholarships_path", "scholarships")
}

func migrate(ctx context.Context, cfg *config.Config, from string, notify bool) error {
	if cfg.Database.DSN == "" {
		return fmt.Errorf("migrate requires database.url (DATABASE_URL)")
	}

	fileCfg := *cfg
	fileCfg.Catalog.Source = from
	src, err := app.FileSource(&fileCfg)
	if err != nil {
		return err
	}

	snap, err := catalog.Load(ctx, src)
	if err != nil {
		return err
	}
	for _, w := range snap.Warnings {
		logger.Warn("Catalog record skipped", "reason", w.Error())
	}

	gormDB, err := app.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if err := database.AutoMigrate(gormDB); err != nil {
		return err
	}

	load, err := database.ReplaceCatalog(ctx, gormDB, snap, events.NewEventID())
	if err != nil {
		return err
	}
	logger.Info("Catalog migrated",
		"source", load.Source,
		"universities", load.Universities,
		"scholarships", load.Scholarships,
		"skipped", len(snap.Warnings),
		"event_id", load.EventID)

	if !notify {
		return nil
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	publisher, err := newPublisher(cfg, sqlDB)
	if err != nil {
		// данные уже в базе; серверы подхватят их при следующем обновлении
		logger.Error("Catalog event publisher unavailable", "error", err)
		return nil
	}
	defer publisher.Close()

	if err := publisher.Publish(ctx, events.FromLoad(load)); err != nil {
		logger.Error("Failed to publish catalog event", "event_id", load.EventID, "error", err)
		return nil
	}
	logger.Info("Catalog event published", "event_id", load.EventID, "transports", len(publisher))
	return nil
}

// newPublisher собирает все настроенные транспорты событий
func newPublisher(cfg *config.Config, sqlDB *sql.DB) (events.MultiPublisher, error) {
	var publishers events.MultiPublisher

	if cfg.Database.Driver == "postgres" {
		publishers = append(publishers, events.NewPGNotifier(sqlDB, cfg.Events.Channel))
	}
	if cfg.Events.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.AMQPExchange)
		if err != nil {
			return publishers, err
		}
		publishers = append(publishers, p)
	}

	return publishers, nil
}
