package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timegrid.app/scheduler/internal/audit"
	"timegrid.app/scheduler/internal/cache"
	"timegrid.app/scheduler/internal/model"
	"timegrid.app/scheduler/internal/schedule"
	"timegrid.app/scheduler/internal/store"
)

// ScheduleTaskParams describes the slice of a gap a task should occupy.
// Start and End are wall-clock "HH:MM" strings, half-open.
type ScheduleTaskParams struct {
	GapID int64
	Start string
	End   string
	Title string
	Notes string
}

// ScheduleTaskResult is the outcome of consuming a gap: the created task and
// the zero, one or two remainder gaps that replaced the consumed one.
type ScheduleTaskResult struct {
	Task       model.Task
	Remainders []model.Gap
}

// ReconcileSummary counts the rows a preference change touched.
type ReconcileSummary struct {
	Created int64 `json:"created"`
	Deleted int64 `json:"deleted"`
	Updated int64 `json:"updated"`
}

type GapService interface {
	// InitializeDay materializes the hourly partition for one date. It is
	// idempotent: a date that already holds gaps is returned as-is.
	InitializeDay(ctx context.Context, userID int64, date time.Time, prefs model.WorkPreferences) ([]model.Gap, error)

	// ScheduleTask consumes part of a gap for a task. The consumed gap is
	// deleted, the remainders inserted and the task recorded in one
	// transaction; a concurrent consumer of the same gap loses with
	// store.ErrNotFound.
	ScheduleTask(ctx context.Context, userID int64, params ScheduleTaskParams) (ScheduleTaskResult, error)

	// ListGapsInWindow returns every gap inside the rolling window around
	// today, cache-fronted.
	ListGapsInWindow(ctx context.Context, userID int64, today time.Time) ([]model.Gap, error)

	// EnsureWindowPopulated generates gaps for every window date (preload
	// horizon included) that has none yet. Returns the number of gaps created.
	EnsureWindowPopulated(ctx context.Context, userID int64, today time.Time, prefs model.WorkPreferences) (int64, error)

	// ReconcilePreferences transitions the stored gap set from oldPrefs to
	// newPrefs across the current window.
	ReconcilePreferences(ctx context.Context, userID int64, today time.Time, oldPrefs, newPrefs model.WorkPreferences) (ReconcileSummary, error)

	// PruneOutsideWindow deletes gaps on dates that fell behind the window.
	PruneOutsideWindow(ctx context.Context, userID int64, today time.Time) (int64, error)
}

type gapService struct {
	gapStore  store.GapStore
	taskStore store.TaskStore
	txRunner  TxRunner
	windows   cache.WindowCache
	auditor   audit.Producer
}

func NewGapService(gapStore store.GapStore, taskStore store.TaskStore, txRunner TxRunner, windows cache.WindowCache, auditor audit.Producer) GapService {
	return &gapService{
		gapStore:  gapStore,
		taskStore: taskStore,
		txRunner:  txRunner,
		windows:   windows,
		auditor:   auditor,
	}
}

func (s *gapService) InitializeDay(ctx context.Context, userID int64, date time.Time, prefs model.WorkPreferences) ([]model.Gap, error) {
	day := schedule.DateOf(date)

	existing, err := s.gapStore.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("listing gaps for date: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	gaps, err := schedule.GenerateDayGaps(userID, day, prefs)
	if err != nil {
		return nil, err
	}
	if len(gaps) == 0 {
		return nil, nil
	}
	if err := ensureValid(gaps); err != nil {
		return nil, err
	}

	created := make([]model.Gap, 0, len(gaps))
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		for _, gap := range gaps {
			row, err := stores.Gaps().Create(ctx, gap)
			if err != nil {
				return fmt.Errorf("creating gap: %w", err)
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.windows.Invalidate(ctx, userID)
	s.emit(ctx, audit.Event{
		Type:   audit.EventDayInitialized,
		UserID: userID,
		Date:   &day,
		Counts: map[string]int64{"created": int64(len(created))},
	})

	slog.InfoContext(ctx, "day initialized",
		"user_id", userID,
		"date", schedule.DateKey(day),
		"gaps_created", len(created),
	)

	return created, nil
}

func (s *gapService) ScheduleTask(ctx context.Context, userID int64, params ScheduleTaskParams) (ScheduleTaskResult, error) {
	taskStart, err := schedule.ToMinutes(params.Start)
	if err != nil {
		return ScheduleTaskResult{}, err
	}
	taskEnd, err := schedule.ToMinutes(params.End)
	if err != nil {
		return ScheduleTaskResult{}, err
	}

	gap, err := s.gapStore.GetByID(ctx, userID, params.GapID)
	if err != nil {
		if err == store.ErrNotFound {
			return ScheduleTaskResult{}, err
		}
		return ScheduleTaskResult{}, fmt.Errorf("loading gap: %w", err)
	}

	split, err := schedule.SplitGapForTask(gap, taskStart, taskEnd)
	if err != nil {
		return ScheduleTaskResult{}, err
	}
	if err := ensureValid(split.Remainders()); err != nil {
		return ScheduleTaskResult{}, err
	}

	var result ScheduleTaskResult
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		// The delete doubles as the concurrency guard: of two racing
		// schedules against the same gap, the second deletes zero rows
		// and the whole transaction rolls back.
		if err := stores.Gaps().Delete(ctx, userID, gap.ID); err != nil {
			return err
		}

		for _, remainder := range split.Remainders() {
			row, err := stores.Gaps().Create(ctx, remainder)
			if err != nil {
				return fmt.Errorf("creating remainder gap: %w", err)
			}
			result.Remainders = append(result.Remainders, row)
		}

		task, err := stores.Tasks().Create(ctx, model.Task{
			UserID:         userID,
			ScheduledGapID: gap.ID,
			Date:           gap.Date,
			StartTime:      taskStart,
			EndTime:        taskEnd,
			Title:          params.Title,
			Notes:          params.Notes,
		})
		if err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		result.Task = task
		return nil
	})
	if err != nil {
		return ScheduleTaskResult{}, err
	}

	s.windows.Invalidate(ctx, userID)
	s.emit(ctx, audit.Event{
		Type:   audit.EventTaskScheduled,
		UserID: userID,
		Date:   &gap.Date,
		GapID:  &gap.ID,
		Counts: map[string]int64{"created": int64(len(result.Remainders))},
	})

	slog.InfoContext(ctx, "task scheduled",
		"user_id", userID,
		"gap_id", gap.ID,
		"task_id", result.Task.ID,
		"remainders", len(result.Remainders),
	)

	return result, nil
}

func (s *gapService) ListGapsInWindow(ctx context.Context, userID int64, today time.Time) ([]model.Gap, error) {
	day := schedule.DateOf(today)
	if gaps, ok := s.windows.Get(ctx, userID, day); ok {
		return gaps, nil
	}

	window := schedule.WindowAround(day)
	gaps, err := s.gapStore.ListInRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("listing gaps in window: %w", err)
	}

	s.windows.Set(ctx, userID, day, gaps)
	return gaps, nil
}

func (s *gapService) EnsureWindowPopulated(ctx context.Context, userID int64, today time.Time, prefs model.WorkPreferences) (int64, error) {
	day := schedule.DateOf(today)

	existingDates, err := s.gapStore.ListDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("listing gap dates: %w", err)
	}
	existing := make(map[string]bool, len(existingDates))
	for _, d := range existingDates {
		existing[schedule.DateKey(d)] = true
	}

	var toCreate []model.Gap
	for _, date := range schedule.MissingDates(day, existing) {
		gaps, err := schedule.GenerateDayGaps(userID, date, prefs)
		if err != nil {
			return 0, err
		}
		toCreate = append(toCreate, gaps...)
	}
	if len(toCreate) == 0 {
		return 0, nil
	}
	if err := ensureValid(toCreate); err != nil {
		return 0, err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		for _, gap := range toCreate {
			if _, err := stores.Gaps().Create(ctx, gap); err != nil {
				return fmt.Errorf("creating gap: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.windows.Invalidate(ctx, userID)
	s.emit(ctx, audit.Event{
		Type:   audit.EventWindowPopulated,
		UserID: userID,
		Counts: map[string]int64{"created": int64(len(toCreate))},
	})

	slog.InfoContext(ctx, "window populated",
		"user_id", userID,
		"today", schedule.DateKey(day),
		"gaps_created", len(toCreate),
	)

	return int64(len(toCreate)), nil
}

func (s *gapService) ReconcilePreferences(ctx context.Context, userID int64, today time.Time, oldPrefs, newPrefs model.WorkPreferences) (ReconcileSummary, error) {
	day := schedule.DateOf(today)
	window := schedule.WindowAround(day)

	existing, err := s.gapStore.ListInRange(ctx, userID, window.Start, window.PreloadEnd)
	if err != nil {
		return ReconcileSummary{}, fmt.Errorf("listing gaps for reconciliation: %w", err)
	}

	result, err := schedule.Reconcile(userID, window.Dates(true), existing, oldPrefs, newPrefs)
	if err != nil {
		return ReconcileSummary{}, err
	}
	if result.Empty() {
		return ReconcileSummary{}, nil
	}
	if err := ensureValid(append(append([]model.Gap{}, result.ToCreate...), result.ToUpdate...)); err != nil {
		return ReconcileSummary{}, err
	}

	summary := ReconcileSummary{}
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		// Applied delete -> update -> create, matching how the mutation
		// sets were derived, so the batch never creates a transient
		// overlap inside the transaction either.
		deleted, err := stores.Gaps().DeleteByIDs(ctx, userID, result.DeleteIDs())
		if err != nil {
			return fmt.Errorf("deleting gaps: %w", err)
		}
		summary.Deleted = deleted

		for _, gap := range result.ToUpdate {
			if _, err := stores.Gaps().UpdateBounds(ctx, gap); err != nil {
				return fmt.Errorf("updating gap %d: %w", gap.ID, err)
			}
			summary.Updated++
		}

		for _, gap := range result.ToCreate {
			if _, err := stores.Gaps().Create(ctx, gap); err != nil {
				return fmt.Errorf("creating gap: %w", err)
			}
			summary.Created++
		}
		return nil
	})
	if err != nil {
		return ReconcileSummary{}, err
	}

	s.windows.Invalidate(ctx, userID)
	s.emit(ctx, audit.Event{
		Type:   audit.EventPreferencesReconciled,
		UserID: userID,
		Counts: map[string]int64{
			"created": summary.Created,
			"deleted": summary.Deleted,
			"updated": summary.Updated,
		},
	})

	slog.InfoContext(ctx, "preferences reconciled",
		"user_id", userID,
		"created", summary.Created,
		"deleted", summary.Deleted,
		"updated", summary.Updated,
	)

	return summary, nil
}

func (s *gapService) PruneOutsideWindow(ctx context.Context, userID int64, today time.Time) (int64, error) {
	day := schedule.DateOf(today)
	window := schedule.WindowAround(day)

	deleted, err := s.gapStore.DeleteBeforeDate(ctx, userID, window.Start)
	if err != nil {
		return 0, fmt.Errorf("pruning gaps: %w", err)
	}
	if deleted == 0 {
		return 0, nil
	}

	s.windows.Invalidate(ctx, userID)
	s.emit(ctx, audit.Event{
		Type:   audit.EventWindowPruned,
		UserID: userID,
		Counts: map[string]int64{"deleted": deleted},
	})

	slog.InfoContext(ctx, "window pruned",
		"user_id", userID,
		"gaps_deleted", deleted,
	)

	return deleted, nil
}

// emit sends an audit event best-effort; the schedule mutation has already
// committed by the time this runs.
func (s *gapService) emit(ctx context.Context, event audit.Event) {
	if err := s.auditor.Emit(ctx, event); err != nil {
		slog.WarnContext(ctx, "audit emit failed", "event_type", event.Type, "user_id", event.UserID, "error", err)
	}
}

// ensureValid rejects write batches that would break the no-overlap or
// positive-duration invariants. A violation here is a bug upstream, never
// user input.
func ensureValid(gaps []model.Gap) error {
	violations := schedule.ValidateGapSet(gaps)
	if len(violations) == 0 {
		return nil
	}
	details := make([]string, len(violations))
	for i, v := range violations {
		details[i] = v.String()
	}
	return fmt.Errorf("gap set invariant violated: %s", strings.Join(details, "; "))
}
