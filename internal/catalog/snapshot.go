package catalog

import (
	"context"
	"time"

	"uniadvisor_backend/internal/models"
)

// Snapshot - неизменяемый срез каталога.
// Один указатель раздаётся всем запросам одновременно, поэтому после создания его нельзя менять.
type Snapshot struct {
	Universities []models.University
	Scholarships []models.Scholarship
	Source       string
	LoadedAt     time.Time
	Warnings     []error
}

// NewSnapshot builds a snapshot stamped with the current time
func NewSnapshot(source string, universities []models.University, scholarships []models.Scholarship, warnings []error) *Snapshot {
	if universities == nil {
		universities = []models.University{}
	}
	if scholarships == nil {
		scholarships = []models.Scholarship{}
	}
	return &Snapshot{
		Universities: universities,
		Scholarships: scholarships,
		Source:       source,
		LoadedAt:     time.Now().UTC(),
		Warnings:     warnings,
	}
}

// WarningMessages returns the load warnings as plain strings
func (s *Snapshot) WarningMessages() []string {
	out := make([]string, 0, len(s.Warnings))
	for _, w := range s.Warnings {
		out = append(out, w.Error())
	}
	return out
}

// Provider hands out the snapshot a request should work against
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Reloader is a provider whose snapshot can be replaced in place
type Reloader interface {
	Provider
	Reload(ctx context.Context) (*Snapshot, error)
}
