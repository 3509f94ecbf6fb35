package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event types emitted to the audit stream. Consumers use them to rebuild a
// per-user timeline of schedule mutations.
const (
	EventDayInitialized        = "day_initialized"
	EventTaskScheduled         = "task_scheduled"
	EventPreferencesReconciled = "preferences_reconciled"
	EventWindowPopulated       = "window_populated"
	EventWindowPruned          = "window_pruned"
)

type Event struct {
	Type   string
	UserID int64
	Date   *time.Time
	GapID  *int64
	// Counts of affected rows, keyed by mutation kind (created, deleted,
	// updated). Only the keys relevant to the event type are present.
	Counts map[string]int64
}

// Producer appends audit events to a Redis stream. Emission is best-effort:
// callers log failures but never fail the user-facing operation over them.
type Producer interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Emit(ctx context.Context, event Event) error {
	fields := map[string]any{
		"event_type": event.Type,
		"user_id":    event.UserID,
		"emitted_at": time.Now().UTC().Format(time.RFC3339),
	}

	if event.Date != nil {
		fields["date"] = event.Date.Format(time.DateOnly)
	}
	if event.GapID != nil {
		fields["gap_id"] = *event.GapID
	}
	for kind, count := range event.Counts {
		fields[kind] = count
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("emitting audit event: %w", err)
	}

	p.logger.InfoContext(ctx, "emitted audit event", "event_type", event.Type, "user_id", event.UserID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

type noopProducer struct{}

// NewNoopProducer returns a producer that drops every event. Used when the
// audit trail is disabled or Redis is not configured.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Emit(context.Context, Event) error { return nil }
func (noopProducer) Close() error                      { return nil }
