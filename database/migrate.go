package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/pkg/apperrors"
)

const insertBatchSize = 100

// AutoMigrate выполняет миграцию таблиц каталога
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.University{},
		&models.Scholarship{},
		&models.CatalogLoad{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// ReplaceCatalog заменяет содержимое каталога целиком в одной транзакции
// и пишет запись в журнал загрузок. Читатели видят либо старый, либо новый каталог.
func ReplaceCatalog(ctx context.Context, db *gorm.DB, snap *catalog.Snapshot, eventID string) (*models.CatalogLoad, error) {
	warnings, err := json.Marshal(snap.WarningMessages())
	if err != nil {
		return nil, fmt.Errorf("encode warnings: %w", err)
	}

	record := &models.CatalogLoad{
		EventID:      eventID,
		Source:       snap.Source,
		Universities: len(snap.Universities),
		Scholarships: len(snap.Scholarships),
		Warnings:     datatypes.JSON(warnings),
		LoadedAt:     time.Now().UTC(),
	}

	universities := make([]models.University, len(snap.Universities))
	for i, u := range snap.Universities {
		u.BaseModel = models.BaseModel{}
		universities[i] = u
	}
	scholarships := make([]models.Scholarship, len(snap.Scholarships))
	for i, s := range snap.Scholarships {
		s.BaseModel = models.BaseModel{}
		scholarships[i] = s
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.University{}).Error; err != nil {
			return fmt.Errorf("clear universities: %w", err)
		}
		if err := all.Delete(&models.Scholarship{}).Error; err != nil {
			return fmt.Errorf("clear scholarships: %w", err)
		}

		if len(universities) > 0 {
			if err := tx.CreateInBatches(&universities, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert universities: %w", err)
			}
		}
		if len(scholarships) > 0 {
			if err := tx.CreateInBatches(&scholarships, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert scholarships: %w", err)
			}
		}

		return tx.Create(record).Error
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err, "Failed to replace catalog tables")
	}

	return record, nil
}

// LastLoad возвращает последнюю запись журнала загрузок
func LastLoad(ctx context.Context, db *gorm.DB) (*models.CatalogLoad, error) {
	var load models.CatalogLoad
	err := db.WithContext(ctx).Order("loaded_at DESC").First(&load).Error
	if err != nil {
		return nil, err
	}
	return &load, nil
}
