package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"timegrid.app/scheduler/common/id"
	"timegrid.app/scheduler/core/db/sqlc"
	"timegrid.app/scheduler/internal/model"
)

type gapStore struct {
	queries *sqlc.Queries
}

func newGapStore(queries *sqlc.Queries) GapStore {
	return &gapStore{queries: queries}
}

func (s *gapStore) Create(ctx context.Context, gap model.Gap) (model.Gap, error) {
	gapID := gap.ID
	if gapID == 0 {
		gapID = id.New()
	}
	row, err := s.queries.CreateGap(ctx, sqlc.CreateGapParams{
		ID:              gapID,
		UserID:          gap.UserID,
		Date:            toDate(gap.Date),
		StartTime:       int32(gap.StartTime),
		EndTime:         int32(gap.EndTime),
		DurationMinutes: int32(gap.DurationMinutes),
		ParentGapID:     gap.ParentGapID,
		OriginalGapID:   gap.OriginalGapID,
		ModifiedBy:      string(gap.ModifiedBy),
	})
	if err != nil {
		return model.Gap{}, err
	}
	return toGapModel(row), nil
}

func (s *gapStore) GetByID(ctx context.Context, userID, gapID int64) (model.Gap, error) {
	row, err := s.queries.GetGapForUser(ctx, sqlc.GetGapForUserParams{
		ID:     gapID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Gap{}, ErrNotFound
		}
		return model.Gap{}, err
	}
	return toGapModel(row), nil
}

func (s *gapStore) ListByUser(ctx context.Context, userID int64) ([]model.Gap, error) {
	rows, err := s.queries.ListGapsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toGapModels(rows), nil
}

func (s *gapStore) ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.Gap, error) {
	rows, err := s.queries.ListGapsByUserAndDate(ctx, sqlc.ListGapsByUserAndDateParams{
		UserID: userID,
		Date:   toDate(date),
	})
	if err != nil {
		return nil, err
	}
	return toGapModels(rows), nil
}

func (s *gapStore) ListInRange(ctx context.Context, userID int64, from, to time.Time) ([]model.Gap, error) {
	rows, err := s.queries.ListGapsInRange(ctx, sqlc.ListGapsInRangeParams{
		UserID:   userID,
		FromDate: toDate(from),
		ToDate:   toDate(to),
	})
	if err != nil {
		return nil, err
	}
	return toGapModels(rows), nil
}

func (s *gapStore) ListDates(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := s.queries.ListGapDates(ctx, userID)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.Time
	}
	return dates, nil
}

func (s *gapStore) UpdateBounds(ctx context.Context, gap model.Gap) (model.Gap, error) {
	row, err := s.queries.UpdateGapBounds(ctx, sqlc.UpdateGapBoundsParams{
		ID:              gap.ID,
		UserID:          gap.UserID,
		StartTime:       int32(gap.StartTime),
		EndTime:         int32(gap.EndTime),
		DurationMinutes: int32(gap.DurationMinutes),
		ModifiedBy:      string(gap.ModifiedBy),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Gap{}, ErrNotFound
		}
		return model.Gap{}, err
	}
	return toGapModel(row), nil
}

func (s *gapStore) Delete(ctx context.Context, userID, gapID int64) error {
	affected, err := s.queries.DeleteGap(ctx, sqlc.DeleteGapParams{
		ID:     gapID,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gapStore) DeleteByIDs(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.queries.DeleteGapsByIDs(ctx, sqlc.DeleteGapsByIDsParams{
		UserID: userID,
		Ids:    ids,
	})
}

func (s *gapStore) DeleteBeforeDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	return s.queries.DeleteGapsBeforeDate(ctx, sqlc.DeleteGapsBeforeDateParams{
		UserID: userID,
		Date:   toDate(date),
	})
}

func toDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func toGapModel(row sqlc.Gap) model.Gap {
	return model.Gap{
		ID:              row.ID,
		UserID:          row.UserID,
		Date:            row.Date.Time,
		StartTime:       int(row.StartTime),
		EndTime:         int(row.EndTime),
		DurationMinutes: int(row.DurationMinutes),
		ParentGapID:     row.ParentGapID,
		OriginalGapID:   row.OriginalGapID,
		ModifiedBy:      model.ModifiedBy(row.ModifiedBy),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func toGapModels(rows []sqlc.Gap) []model.Gap {
	result := make([]model.Gap, len(rows))
	for i, row := range rows {
		result[i] = toGapModel(row)
	}
	return result
}
