package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/pkg/apperrors"
)

// Store - кэширующий провайдер.
// Запросы читают текущий снимок без блокировок; Reload собирает новый снимок целиком и подменяет указатель.
type Store struct {
	src     Source
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes reloads
}

// NewStore creates an empty store. Call Reload before serving traffic.
func NewStore(src Source) *Store {
	return &Store{src: src}
}

// NewStaticStore wraps an already built snapshot
func NewStaticStore(snap *Snapshot) *Store {
	s := &Store{src: staticSource{snap: snap}}
	s.current.Store(snap)
	return s
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, apperrors.CatalogUnavailable(errors.New("catalog not loaded"), "Catalog has not been loaded yet")
	}
	return snap, nil
}

// Reload loads a fresh snapshot from the source. On failure the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := Load(ctx, s.src)
	if err != nil {
		logger.CtxWithError(ctx, "Catalog reload failed, keeping previous snapshot", err,
			"source", s.src.Describe(),
			"has_previous", s.current.Load() != nil)
		return nil, err
	}

	s.current.Store(snap)

	logger.CtxInfo(ctx, "Catalog loaded",
		"source", snap.Source,
		"universities", len(snap.Universities),
		"scholarships", len(snap.Scholarships),
		"warnings", len(snap.Warnings))
	for _, w := range snap.Warnings {
		logger.CtxWarn(ctx, "Catalog record skipped", "reason", w.Error())
	}

	return snap, nil
}

// Live - провайдер без кэша: каждый запрос читает источник заново
type Live struct {
	src Source
}

// NewLive creates a provider that loads the source on every call
func NewLive(src Source) *Live {
	return &Live{src: src}
}

func (l *Live) Snapshot(ctx context.Context) (*Snapshot, error) {
	return Load(ctx, l.src)
}

type staticSource struct {
	snap *Snapshot
}

func (s staticSource) Describe() string { return s.snap.Source }

func (s staticSource) ListUniversities(context.Context) ([]models.University, []error, error) {
	return s.snap.Universities, nil, nil
}

func (s staticSource) ListScholarships(context.Context) ([]models.Scholarship, []error, error) {
	return s.snap.Scholarships, nil, nil
}
