package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"uniadvisor_backend/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// pingBackoff - пауза между попытками подключения
var pingBackoff = 2 * time.Second

// Dialector выбирает gorm-драйвер по имени
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Open подключается к базе и проверяет соединение.
// Ping повторяется retries раз: база в docker-compose поднимается позже приложения.
func Open(ctx context.Context, driver, dsn string, retries int) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url is empty")
	}
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}

	if retries < 1 {
		retries = 1
	}
	for attempt := 1; ; attempt++ {
		err = sqlDB.PingContext(ctx)
		if err == nil {
			break
		}
		if attempt >= retries {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database unavailable after %d attempts: %w", attempt, err)
		}
		logger.Warn("Database ping failed, retrying", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			_ = sqlDB.Close()
			return nil, ctx.Err()
		case <-time.After(pingBackoff):
		}
	}

	logger.Info("Database connected", "driver", driver)
	return gormDB, nil
}

// Close закрывает пул соединений
func Close(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
