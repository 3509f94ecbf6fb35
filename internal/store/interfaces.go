package store

import (
	"context"
	"errors"
	"time"

	"timegrid.app/scheduler/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist or belongs
// to another user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// GapStore defines the contract for gap data access. Every operation is
// scoped by userID so concurrent requests from different users never
// interfere.
type GapStore interface {
	Create(ctx context.Context, gap model.Gap) (model.Gap, error)
	GetByID(ctx context.Context, userID, id int64) (model.Gap, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Gap, error)
	ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.Gap, error)
	ListInRange(ctx context.Context, userID int64, from, to time.Time) ([]model.Gap, error)
	ListDates(ctx context.Context, userID int64) ([]time.Time, error)
	UpdateBounds(ctx context.Context, gap model.Gap) (model.Gap, error)

	// Delete removes one gap and returns ErrNotFound when no row matched.
	// Inside a transaction this doubles as a concurrency guard: the second
	// of two racing splits deletes zero rows and aborts.
	Delete(ctx context.Context, userID, id int64) error
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error)
	DeleteBeforeDate(ctx context.Context, userID int64, date time.Time) (int64, error)
}

// TaskStore defines the contract for scheduled-task data access.
type TaskStore interface {
	Create(ctx context.Context, task model.Task) (model.Task, error)
	GetByID(ctx context.Context, userID, id int64) (model.Task, error)
	ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.Task, error)
}
