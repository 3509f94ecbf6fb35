package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"timegrid.app/scheduler/internal/model"
)

// WindowCache fronts the rolling-window gap listing with a short TTL. Misses
// and errors both fall through to the database; every schedule mutation
// invalidates the owner's entry.
type WindowCache interface {
	Get(ctx context.Context, userID int64, today time.Time) ([]model.Gap, bool)
	Set(ctx context.Context, userID int64, today time.Time, gaps []model.Gap)
	Invalidate(ctx context.Context, userID int64)
}

type windowEntry struct {
	Today string      `json:"today"`
	Gaps  []model.Gap `json:"gaps"`
}

type redisWindowCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisWindowCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) WindowCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisWindowCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// One key per user. The entry records which "today" it was computed for, so a
// midnight rollover reads as a miss instead of serving yesterday's window.
func windowKey(userID int64) string {
	return fmt.Sprintf("scheduler:window:%d", userID)
}

func (c *redisWindowCache) Get(ctx context.Context, userID int64, today time.Time) ([]model.Gap, bool) {
	raw, err := c.client.Get(ctx, windowKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "window cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var entry windowEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.WarnContext(ctx, "window cache entry corrupt", "user_id", userID, "error", err)
		return nil, false
	}
	if entry.Today != today.Format(time.DateOnly) {
		return nil, false
	}
	return entry.Gaps, true
}

func (c *redisWindowCache) Set(ctx context.Context, userID int64, today time.Time, gaps []model.Gap) {
	raw, err := json.Marshal(windowEntry{
		Today: today.Format(time.DateOnly),
		Gaps:  gaps,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "window cache marshal failed", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, windowKey(userID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "window cache write failed", "user_id", userID, "error", err)
	}
}

func (c *redisWindowCache) Invalidate(ctx context.Context, userID int64) {
	if err := c.client.Del(ctx, windowKey(userID)).Err(); err != nil {
		c.logger.WarnContext(ctx, "window cache invalidation failed", "user_id", userID, "error", err)
	}
}

type noopWindowCache struct{}

// NewNoopWindowCache returns a cache that never hits. Used when caching is
// disabled or Redis is not configured.
func NewNoopWindowCache() WindowCache {
	return noopWindowCache{}
}

func (noopWindowCache) Get(context.Context, int64, time.Time) ([]model.Gap, bool) { return nil, false }
func (noopWindowCache) Set(context.Context, int64, time.Time, []model.Gap)        {}
func (noopWindowCache) Invalidate(context.Context, int64)                         {}
