package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/pkg/apperrors"
)

// Load reads both halves of the catalog concurrently. A failure in either half
// fails the whole load; partial snapshots are never returned.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	var (
		universities []models.University
		scholarships []models.Scholarship
		uniWarnings  []error
		schWarnings  []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		universities, uniWarnings, err = src.ListUniversities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		scholarships, schWarnings, err = src.ListScholarships(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if apperrors.HasCode(err, apperrors.CodeCatalogUnavailable) {
			return nil, err
		}
		return nil, apperrors.CatalogUnavailable(err, "Catalog source "+src.Describe()+" is unavailable")
	}

	warnings := append(uniWarnings, schWarnings...)
	return NewSnapshot(src.Describe(), universities, scholarships, warnings), nil
}
