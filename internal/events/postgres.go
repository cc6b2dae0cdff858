package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/pkg/apperrors"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	listenerPingInterval = 90 * time.Second
)

// PGNotifier публикует события через pg_notify
type PGNotifier struct {
	db      *sql.DB
	channel string
}

func NewPGNotifier(db *sql.DB, channel string) *PGNotifier {
	return &PGNotifier{db: db, channel: channel}
}

func (n *PGNotifier) Publish(ctx context.Context, event CatalogEvent) error {
	payload, err := event.Encode()
	if err != nil {
		return err
	}
	if _, err := n.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", n.channel, string(payload)); err != nil {
		return apperrors.ExternalServiceError(err, "postgres", fmt.Sprintf("pg_notify %s failed", n.channel))
	}
	return nil
}

// Close is a no-op: the connection pool belongs to the caller
func (n *PGNotifier) Close() error { return nil }

// PGListener слушает канал LISTEN/NOTIFY через отдельное соединение lib/pq
type PGListener struct {
	dsn     string
	channel string
}

func NewPGListener(dsn, channel string) *PGListener {
	return &PGListener{dsn: dsn, channel: channel}
}

// Run blocks until ctx is cancelled. A reconnect is reported as an event with
// an empty ID because notifications sent while disconnected are lost.
func (l *PGListener) Run(ctx context.Context, handle Handler) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("Postgres listener problem", "channel", l.channel, "event", int(ev), "error", err)
			}
		})
	defer listener.Close()

	if err := listener.Listen(l.channel); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	logger.Info("Listening for catalog notifications", "channel", l.channel)

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case n := <-listener.Notify:
			event := CatalogEvent{Source: "reconnect"}
			if n != nil {
				decoded, err := Decode([]byte(n.Extra))
				if err != nil {
					logger.Warn("Unreadable catalog notification, reloading anyway", "error", err)
				} else {
					event = decoded
				}
			}
			if err := handle(ctx, event); err != nil {
				logger.Error("Catalog notification handler failed", "event_id", event.ID, "error", err)
			}

		case <-ticker.C:
			go func() {
				if err := listener.Ping(); err != nil {
					logger.Warn("Postgres listener ping failed", "error", err)
				}
			}()
		}
	}
}
