package catalog

import (
	"context"

	"uniadvisor_backend/internal/models"
)

// Source lists catalog records. Warnings describe rows that were skipped;
// err means the source itself could not be read.
type Source interface {
	Describe() string
	ListUniversities(ctx context.Context) ([]models.University, []error, error)
	ListScholarships(ctx context.Context) ([]models.Scholarship, []error, error)
}
