package services

import (
	"context"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/internal/services/dto"
	"uniadvisor_backend/pkg/apperrors"
)

type CatalogService interface {
	Health(ctx context.Context) (dto.CatalogHealth, error)
	Universities(snap *catalog.Snapshot) []models.University
	Reload(ctx context.Context) (dto.CatalogHealth, error)
}

type catalogService struct {
	provider catalog.Provider
	mode     string
}

// NewCatalogService - mode только для отображения в /health (cached, live)
func NewCatalogService(provider catalog.Provider, mode string) CatalogService {
	return &catalogService{provider: provider, mode: mode}
}

func (s *catalogService) health(snap *catalog.Snapshot) dto.CatalogHealth {
	return dto.CatalogHealth{
		Source:       snap.Source,
		Mode:         s.mode,
		Universities: len(snap.Universities),
		Scholarships: len(snap.Scholarships),
		Warnings:     snap.WarningMessages(),
		LoadedAt:     snap.LoadedAt,
	}
}

func (s *catalogService) Health(ctx context.Context) (dto.CatalogHealth, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return dto.CatalogHealth{}, err
	}
	return s.health(snap), nil
}

func (s *catalogService) Universities(snap *catalog.Snapshot) []models.University {
	return snap.Universities
}

func (s *catalogService) Reload(ctx context.Context) (dto.CatalogHealth, error) {
	reloader, ok := s.provider.(catalog.Reloader)
	if !ok {
		return dto.CatalogHealth{}, apperrors.ErrReloadNotSupported
	}
	snap, err := reloader.Reload(ctx)
	if err != nil {
		return dto.CatalogHealth{}, err
	}
	return s.health(snap), nil
}
