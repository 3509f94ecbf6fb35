package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"timegrid.app/scheduler/internal/audit"
	"timegrid.app/scheduler/internal/model"
	"timegrid.app/scheduler/internal/schedule"
	"timegrid.app/scheduler/internal/service"
	"timegrid.app/scheduler/internal/store"
)

var _ = Describe("GapService", func() {
	var (
		svc      service.GapService
		gapStore *mockGapStore
		tasks    *mockTaskStore
		windows  *mockWindowCache
		auditor  *mockAuditProducer
		ctx      context.Context

		monday   = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
		saturday = time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
		userID   = int64(42)
	)

	prefs := func(start, end string) model.WorkPreferences {
		return model.WorkPreferences{
			WorkStart:   start,
			WorkEnd:     end,
			WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		gapStore = &mockGapStore{}
		tasks = &mockTaskStore{}
		windows = &mockWindowCache{}
		auditor = &mockAuditProducer{}
		svc = service.NewGapService(gapStore, tasks, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{gaps: gapStore, tasks: tasks})
			},
		}, windows, auditor)
	})

	Describe("InitializeDay", func() {
		It("creates the hourly partition for a working day", func() {
			gaps, err := svc.InitializeDay(ctx, userID, monday, prefs("09:00", "17:00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(gaps).To(HaveLen(8))
			Expect(gaps[0].StartTime).To(Equal(540))
			Expect(gaps[7].EndTime).To(Equal(1020))
			Expect(gapStore.createCalls).To(Equal(8))
			Expect(windows.invalidateCalls).To(Equal(1))
			Expect(auditor.events).To(HaveLen(1))
			Expect(auditor.events[0].Type).To(Equal(audit.EventDayInitialized))
		})

		It("returns existing gaps without writing when the day is already initialized", func() {
			existing := []model.Gap{{ID: 7, UserID: userID, Date: monday, StartTime: 540, EndTime: 600, DurationMinutes: 60}}
			gapStore.listByDateFn = func(_ context.Context, _ int64, _ time.Time) ([]model.Gap, error) {
				return existing, nil
			}

			gaps, err := svc.InitializeDay(ctx, userID, monday, prefs("09:00", "17:00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(gaps).To(Equal(existing))
			Expect(gapStore.createCalls).To(Equal(0))
			Expect(windows.invalidateCalls).To(Equal(0))
			Expect(auditor.events).To(BeEmpty())
		})

		It("produces nothing for a non-working day", func() {
			gaps, err := svc.InitializeDay(ctx, userID, saturday, prefs("09:00", "17:00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(gaps).To(BeEmpty())
			Expect(gapStore.createCalls).To(Equal(0))
		})

		It("rejects inverted work hours", func() {
			_, err := svc.InitializeDay(ctx, userID, monday, prefs("17:00", "09:00"))
			var invalidErr *schedule.InvalidPreferencesError
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
			Expect(gapStore.createCalls).To(Equal(0))
		})

		It("rejects malformed work hours", func() {
			_, err := svc.InitializeDay(ctx, userID, monday, prefs("9am", "17:00"))
			var parseErr *schedule.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
		})
	})

	Describe("ScheduleTask", func() {
		gap := model.Gap{
			ID:              100,
			UserID:          42,
			StartTime:       660, // 11:00
			EndTime:         720, // 12:00
			DurationMinutes: 60,
			ModifiedBy:      model.ModifiedBySystem,
		}

		BeforeEach(func() {
			g := gap
			g.Date = monday
			gapStore.getByIDFn = func(_ context.Context, uid, id int64) (model.Gap, error) {
				Expect(uid).To(Equal(userID))
				Expect(id).To(Equal(int64(100)))
				return g, nil
			}
		})

		It("deletes the gap, inserts remainders and records the task", func() {
			result, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 100,
				Start: "11:15",
				End:   "11:45",
				Title: "standup",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(gapStore.deletedIDs).To(Equal([]int64{100}))
			Expect(result.Remainders).To(HaveLen(2))
			Expect(result.Remainders[0].StartTime).To(Equal(660))
			Expect(result.Remainders[0].EndTime).To(Equal(675))
			Expect(result.Remainders[1].StartTime).To(Equal(705))
			Expect(result.Remainders[1].EndTime).To(Equal(720))

			Expect(result.Task.ScheduledGapID).To(Equal(int64(100)))
			Expect(result.Task.StartTime).To(Equal(675))
			Expect(result.Task.EndTime).To(Equal(705))
			Expect(result.Task.Title).To(Equal("standup"))

			Expect(windows.invalidateCalls).To(Equal(1))
			Expect(auditor.events).To(HaveLen(1))
			Expect(auditor.events[0].Type).To(Equal(audit.EventTaskScheduled))
		})

		It("leaves no remainders when the task consumes the gap exactly", func() {
			result, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 100,
				Start: "11:00",
				End:   "12:00",
				Title: "deep work",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Remainders).To(BeEmpty())
			Expect(gapStore.deletedIDs).To(Equal([]int64{100}))
			Expect(tasks.createCalls).To(Equal(1))
		})

		It("rejects a task interval outside the gap", func() {
			_, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 100,
				Start: "10:30",
				End:   "11:30",
			})
			var oob *schedule.OutOfBoundsError
			Expect(errors.As(err, &oob)).To(BeTrue())
			Expect(gapStore.deletedIDs).To(BeEmpty())
			Expect(tasks.createCalls).To(Equal(0))
		})

		It("returns not found for an unknown gap", func() {
			gapStore.getByIDFn = nil

			_, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 999,
				Start: "11:00",
				End:   "11:30",
			})
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("aborts when a concurrent schedule already consumed the gap", func() {
			gapStore.deleteFn = func(_ context.Context, _, _ int64) error {
				return store.ErrNotFound
			}

			_, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 100,
				Start: "11:00",
				End:   "11:30",
			})
			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(tasks.createCalls).To(Equal(0))
			Expect(windows.invalidateCalls).To(Equal(0))
			Expect(auditor.events).To(BeEmpty())
		})

		It("rejects malformed task times before touching the store", func() {
			_, err := svc.ScheduleTask(ctx, userID, service.ScheduleTaskParams{
				GapID: 100,
				Start: "eleven",
				End:   "11:30",
			})
			var parseErr *schedule.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
		})
	})

	Describe("ListGapsInWindow", func() {
		It("serves from cache on a hit", func() {
			cached := []model.Gap{{ID: 1, UserID: userID}}
			windows.getFn = func(_ context.Context, _ int64, _ time.Time) ([]model.Gap, bool) {
				return cached, true
			}
			listed := false
			gapStore.listInRangeFn = func(_ context.Context, _ int64, _, _ time.Time) ([]model.Gap, error) {
				listed = true
				return nil, nil
			}

			gaps, err := svc.ListGapsInWindow(ctx, userID, monday)
			Expect(err).NotTo(HaveOccurred())
			Expect(gaps).To(Equal(cached))
			Expect(listed).To(BeFalse())
		})

		It("queries the window bounds and fills the cache on a miss", func() {
			stored := []model.Gap{{ID: 2, UserID: userID, Date: monday}}
			gapStore.listInRangeFn = func(_ context.Context, _ int64, from, to time.Time) ([]model.Gap, error) {
				Expect(from).To(Equal(monday.AddDate(0, 0, -7)))
				Expect(to).To(Equal(monday.AddDate(0, 0, 7)))
				return stored, nil
			}

			gaps, err := svc.ListGapsInWindow(ctx, userID, monday)
			Expect(err).NotTo(HaveOccurred())
			Expect(gaps).To(Equal(stored))
			Expect(windows.setCalls).To(Equal(1))
			Expect(windows.setGaps).To(Equal(stored))
		})
	})

	Describe("EnsureWindowPopulated", func() {
		It("generates gaps for every missing working day through the preload horizon", func() {
			// 18 window dates; Mon-Fri prefs leave weekends ungenerated.
			created, err := svc.EnsureWindowPopulated(ctx, userID, monday, prefs("09:00", "10:00"))
			Expect(err).NotTo(HaveOccurred())

			// 2026-02-23 .. 2026-03-12 holds 14 weekdays, one gap each.
			Expect(created).To(Equal(int64(14)))
			Expect(gapStore.createCalls).To(Equal(14))
			Expect(windows.invalidateCalls).To(Equal(1))
			Expect(auditor.events).To(HaveLen(1))
			Expect(auditor.events[0].Type).To(Equal(audit.EventWindowPopulated))
		})

		It("skips dates that already hold gaps", func() {
			gapStore.listDatesFn = func(_ context.Context, _ int64) ([]time.Time, error) {
				var dates []time.Time
				for _, d := range schedule.WindowAround(monday).Dates(true) {
					dates = append(dates, d)
				}
				return dates, nil
			}

			created, err := svc.EnsureWindowPopulated(ctx, userID, monday, prefs("09:00", "17:00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeZero())
			Expect(gapStore.createCalls).To(Equal(0))
			Expect(windows.invalidateCalls).To(Equal(0))
			Expect(auditor.events).To(BeEmpty())
		})
	})

	Describe("ReconcilePreferences", func() {
		It("applies the shrink as deletes and updates", func() {
			// One day of 09:00-17:00 gaps; new hours end at 16:30.
			existing := schedule.HourlyPartition(userID, monday, 540, 1020)
			for i := range existing {
				existing[i].ID = int64(i + 1)
			}
			gapStore.listInRangeFn = func(_ context.Context, _ int64, _, _ time.Time) ([]model.Gap, error) {
				return existing, nil
			}

			summary, err := svc.ReconcilePreferences(ctx, userID, monday,
				prefs("09:00", "17:00"), prefs("09:00", "16:30"))
			Expect(err).NotTo(HaveOccurred())

			Expect(summary.Deleted).To(BeZero())
			Expect(summary.Updated).To(Equal(int64(1)))
			Expect(summary.Created).To(BeZero())
			Expect(gapStore.updated).To(HaveLen(1))
			Expect(gapStore.updated[0].EndTime).To(Equal(990))

			Expect(windows.invalidateCalls).To(Equal(1))
			Expect(auditor.events).To(HaveLen(1))
			Expect(auditor.events[0].Type).To(Equal(audit.EventPreferencesReconciled))
		})

		It("creates fresh partitions for newly working days in the window", func() {
			weekendPrefs := prefs("09:00", "11:00")
			weekendPrefs.WorkingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
			weekendPrefs.IncludeWeekends = true

			summary, err := svc.ReconcilePreferences(ctx, userID, monday,
				prefs("09:00", "11:00"), weekendPrefs)
			Expect(err).NotTo(HaveOccurred())

			// Two Saturdays fall inside the window + preload horizon,
			// two hourly gaps each.
			Expect(summary.Created).To(Equal(int64(4)))
			Expect(summary.Deleted).To(BeZero())
			Expect(summary.Updated).To(BeZero())
		})

		It("does nothing when the change is a no-op", func() {
			summary, err := svc.ReconcilePreferences(ctx, userID, monday,
				prefs("09:00", "17:00"), prefs("09:00", "17:00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(Equal(service.ReconcileSummary{}))
			Expect(windows.invalidateCalls).To(Equal(0))
			Expect(auditor.events).To(BeEmpty())
		})

		It("rejects inverted new hours", func() {
			_, err := svc.ReconcilePreferences(ctx, userID, monday,
				prefs("09:00", "17:00"), prefs("17:00", "09:00"))
			var invalidErr *schedule.InvalidPreferencesError
			Expect(errors.As(err, &invalidErr)).To(BeTrue())
		})
	})

	Describe("PruneOutsideWindow", func() {
		It("deletes everything strictly before the window start", func() {
			gapStore.deleteBeforeDateFn = func(_ context.Context, _ int64, date time.Time) (int64, error) {
				Expect(date).To(Equal(monday.AddDate(0, 0, -7)))
				return 5, nil
			}

			deleted, err := svc.PruneOutsideWindow(ctx, userID, monday)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(5)))
			Expect(windows.invalidateCalls).To(Equal(1))
			Expect(auditor.events).To(HaveLen(1))
			Expect(auditor.events[0].Type).To(Equal(audit.EventWindowPruned))
		})

		It("emits nothing when no rows matched", func() {
			deleted, err := svc.PruneOutsideWindow(ctx, userID, monday)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeZero())
			Expect(windows.invalidateCalls).To(Equal(0))
			Expect(auditor.events).To(BeEmpty())
		})
	})
})
