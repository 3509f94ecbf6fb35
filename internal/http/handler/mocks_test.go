package handler_test

import (
	"context"
	"time"

	"timegrid.app/scheduler/internal/model"
	"timegrid.app/scheduler/internal/service"
)

type mockGapService struct {
	initializeDayFn   func(ctx context.Context, userID int64, date time.Time, prefs model.WorkPreferences) ([]model.Gap, error)
	scheduleTaskFn    func(ctx context.Context, userID int64, params service.ScheduleTaskParams) (service.ScheduleTaskResult, error)
	listGapsFn        func(ctx context.Context, userID int64, today time.Time) ([]model.Gap, error)
	ensurePopulatedFn func(ctx context.Context, userID int64, today time.Time, prefs model.WorkPreferences) (int64, error)
	reconcileFn       func(ctx context.Context, userID int64, today time.Time, oldPrefs, newPrefs model.WorkPreferences) (service.ReconcileSummary, error)
	pruneFn           func(ctx context.Context, userID int64, today time.Time) (int64, error)
}

func (m *mockGapService) InitializeDay(ctx context.Context, userID int64, date time.Time, prefs model.WorkPreferences) ([]model.Gap, error) {
	if m.initializeDayFn != nil {
		return m.initializeDayFn(ctx, userID, date, prefs)
	}
	return nil, nil
}

func (m *mockGapService) ScheduleTask(ctx context.Context, userID int64, params service.ScheduleTaskParams) (service.ScheduleTaskResult, error) {
	if m.scheduleTaskFn != nil {
		return m.scheduleTaskFn(ctx, userID, params)
	}
	return service.ScheduleTaskResult{}, nil
}

func (m *mockGapService) ListGapsInWindow(ctx context.Context, userID int64, today time.Time) ([]model.Gap, error) {
	if m.listGapsFn != nil {
		return m.listGapsFn(ctx, userID, today)
	}
	return nil, nil
}

func (m *mockGapService) EnsureWindowPopulated(ctx context.Context, userID int64, today time.Time, prefs model.WorkPreferences) (int64, error) {
	if m.ensurePopulatedFn != nil {
		return m.ensurePopulatedFn(ctx, userID, today, prefs)
	}
	return 0, nil
}

func (m *mockGapService) ReconcilePreferences(ctx context.Context, userID int64, today time.Time, oldPrefs, newPrefs model.WorkPreferences) (service.ReconcileSummary, error) {
	if m.reconcileFn != nil {
		return m.reconcileFn(ctx, userID, today, oldPrefs, newPrefs)
	}
	return service.ReconcileSummary{}, nil
}

func (m *mockGapService) PruneOutsideWindow(ctx context.Context, userID int64, today time.Time) (int64, error) {
	if m.pruneFn != nil {
		return m.pruneFn(ctx, userID, today)
	}
	return 0, nil
}
