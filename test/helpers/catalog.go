package helpers

import (
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"
)

// TestCatalog - встроенный каталог плюс голландская бизнес-школа для сценария с профилем
func TestCatalog() *catalog.Snapshot {
	universities := append(catalog.SeedUniversities(), models.University{
		Name:         "Erasmus University Rotterdam",
		Country:      "Netherlands",
		City:         "Rotterdam",
		Field:        "Business / MBA",
		MinGPA:       3.3,
		MinTestScore: 6.5,
		AnnualFee:    16000,
		Ranking:      65,
	})
	return catalog.NewSnapshot("test", universities, catalog.SeedScholarships(), nil)
}
