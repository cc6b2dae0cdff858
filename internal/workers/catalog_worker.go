package workers

import (
	"context"
	"time"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/events"
	"uniadvisor_backend/internal/logger"
)

const catalogWorkerName = "catalog_refresh"

// CatalogWorker периодически перечитывает каталог из источника
type CatalogWorker struct {
	store    catalog.Reloader
	interval time.Duration
}

func NewCatalogWorker(store catalog.Reloader, interval time.Duration) *CatalogWorker {
	return &CatalogWorker{store: store, interval: interval}
}

// Run блокирует до отмены ctx. Нулевой интервал отключает обновление.
func (w *CatalogWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Catalog refresh worker stopped")
			return nil
		case <-ticker.C:
			snap, err := w.store.Reload(ctx)
			if err != nil {
				// предыдущий снимок остаётся в работе
				logger.WorkerLog(catalogWorkerName, "reload", err)
				continue
			}
			logger.WorkerLog(catalogWorkerName, "reload", nil,
				"universities", len(snap.Universities),
				"scholarships", len(snap.Scholarships))
		}
	}
}

// EventSource - источник уведомлений о замене каталога (LISTEN/NOTIFY, RabbitMQ)
type EventSource interface {
	Run(ctx context.Context, handle events.Handler) error
}

// EventWorker перезагружает каталог по каждому уведомлению
type EventWorker struct {
	name   string
	source EventSource
	store  catalog.Reloader
}

func NewEventWorker(name string, source EventSource, store catalog.Reloader) *EventWorker {
	return &EventWorker{name: name, source: source, store: store}
}

func (w *EventWorker) Run(ctx context.Context) error {
	return w.source.Run(ctx, w.handle)
}

func (w *EventWorker) handle(ctx context.Context, event events.CatalogEvent) error {
	snap, err := w.store.Reload(ctx)
	if err != nil {
		logger.WorkerLog(w.name, "reload", err, "event_id", event.ID)
		return err
	}
	logger.WorkerLog(w.name, "reload", nil,
		"event_id", event.ID,
		"event_source", event.Source,
		"universities", len(snap.Universities))
	return nil
}
