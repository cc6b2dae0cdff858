package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"uniadvisor_backend/internal/models"
)

// CatalogEvent - уведомление о том, что каталог в источнике заменён
type CatalogEvent struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Universities int       `json:"universities"`
	Scholarships int       `json:"scholarships"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// Handler is called for every received event
type Handler func(ctx context.Context, event CatalogEvent) error

// Publisher announces catalog replacements
type Publisher interface {
	Publish(ctx context.Context, event CatalogEvent) error
	Close() error
}

// NewEventID returns a unique event id
func NewEventID() string {
	return uuid.NewString()
}

// FromLoad builds the event for a finished catalog load
func FromLoad(load *models.CatalogLoad) CatalogEvent {
	return CatalogEvent{
		ID:           load.EventID,
		Source:       load.Source,
		Universities: load.Universities,
		Scholarships: load.Scholarships,
		LoadedAt:     load.LoadedAt,
	}
}

func (e CatalogEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses an event payload
func Decode(payload []byte) (CatalogEvent, error) {
	var e CatalogEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return CatalogEvent{}, fmt.Errorf("decode catalog event: %w", err)
	}
	return e, nil
}

// MultiPublisher sends every event to all publishers
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, event CatalogEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiPublisher) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
