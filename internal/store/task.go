package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"timegrid.app/scheduler/common/id"
	"timegrid.app/scheduler/core/db/sqlc"
	"timegrid.app/scheduler/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	var notes *string
	if task.Notes != "" {
		notes = &task.Notes
	}
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:             id.New(),
		UserID:         task.UserID,
		ScheduledGapID: task.ScheduledGapID,
		Date:           toDate(task.Date),
		StartTime:      int32(task.StartTime),
		EndTime:        int32(task.EndTime),
		Title:          task.Title,
		Notes:          notes,
	})
	if err != nil {
		return model.Task{}, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) GetByID(ctx context.Context, userID, taskID int64) (model.Task, error) {
	row, err := s.queries.GetTaskForUser(ctx, sqlc.GetTaskForUserParams{
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByUserAndDate(ctx, sqlc.ListTasksByUserAndDateParams{
		UserID: userID,
		Date:   toDate(date),
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = toTaskModel(row)
	}
	return result, nil
}

func toTaskModel(row sqlc.Task) model.Task {
	task := model.Task{
		ID:             row.ID,
		UserID:         row.UserID,
		ScheduledGapID: row.ScheduledGapID,
		Date:           row.Date.Time,
		StartTime:      int(row.StartTime),
		EndTime:        int(row.EndTime),
		Title:          row.Title,
		CreatedAt:      row.CreatedAt.Time,
	}
	if row.Notes != nil {
		task.Notes = *row.Notes
	}
	return task
}
