package dto

import "time"

// ========================
// Advisor / reference DTOs
// ========================

type QueryRequest struct {
	Query string `json:"query" validate:"max=1000"`
}

// QueryAnswer - ответ базы знаний; Topic пуст, если сработал ответ по умолчанию
type QueryAnswer struct {
	Answer string `json:"answer"`
	Topic  string `json:"topic,omitempty"`
}

type VisaCodeURI struct {
	Code string `uri:"code" json:"code" validate:"required,is-country-code"`
}

// CatalogHealth - состояние текущего снимка каталога
type CatalogHealth struct {
	Source       string    `json:"source"`
	Mode         string    `json:"mode"`
	Universities int       `json:"universities"`
	Scholarships int       `json:"scholarships"`
	Warnings     []string  `json:"warnings"`
	LoadedAt     time.Time `json:"loaded_at"`
}
