package models

import "time"

// BaseModel - общие поля таблиц каталога.
// Целочисленный ID, чтобы схема одинаково работала в Postgres и MySQL.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
}
