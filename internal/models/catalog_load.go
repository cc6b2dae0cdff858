package models

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogLoad - журнал загрузок каталога командой migrate.
// Warnings хранит пропущенные строки в JSON, чтобы их можно было посмотреть после загрузки.
type CatalogLoad struct {
	BaseModel
	EventID      string         `gorm:"size:36;uniqueIndex" json:"event_id"`
	Source       string         `gorm:"size:512" json:"source"`
	Universities int            `json:"universities"`
	Scholarships int            `json:"scholarships"`
	Warnings     datatypes.JSON `json:"warnings"`
	LoadedAt     time.Time      `json:"loaded_at"`
}
