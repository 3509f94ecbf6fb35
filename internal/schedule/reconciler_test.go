package schedule_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"timegrid.app/scheduler/internal/model"
	"timegrid.app/scheduler/internal/schedule"
)

// applyResult replays a reconciliation against an in-memory gap set the way
// the service applies it against the store: delete, then update, then create.
func applyResult(gaps []model.Gap, result schedule.ReconcileResult) []model.Gap {
	deleted := make(map[int64]bool)
	for _, g := range result.ToDelete {
		deleted[g.ID] = true
	}
	updated := make(map[int64]model.Gap)
	for _, g := range result.ToUpdate {
		updated[g.ID] = g
	}

	var next []model.Gap
	for _, g := range gaps {
		if deleted[g.ID] {
			continue
		}
		if u, ok := updated[g.ID]; ok {
			next = append(next, u)
			continue
		}
		next = append(next, g)
	}

	nextID := int64(1000)
	for _, g := range result.ToCreate {
		g.ID = nextID
		nextID++
		next = append(next, g)
	}
	return next
}

var _ = Describe("Reconcile", func() {
	const userID = int64(42)

	var existing []model.Gap

	mondayGaps := func(prefs model.WorkPreferences) []model.Gap {
		gaps, err := schedule.GenerateDayGaps(userID, monday, prefs)
		Expect(err).NotTo(HaveOccurred())
		for i := range gaps {
			gaps[i].ID = int64(i + 1)
		}
		return gaps
	}

	BeforeEach(func() {
		existing = mondayGaps(weekdayPrefs("09:00", "17:00"))
	})

	It("is a no-op when preferences are unchanged", func() {
		prefs := weekdayPrefs("09:00", "17:00")
		result, err := schedule.Reconcile(userID, nil, existing, prefs, prefs)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Empty()).To(BeTrue())
	})

	It("is a no-op for an empty gap set under an unchanged schedule", func() {
		prefs := weekdayPrefs("09:00", "17:00")
		result, err := schedule.Reconcile(userID, nil, nil, prefs, prefs)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Empty()).To(BeTrue())
	})

	It("truncates the final gap instead of deleting it when the work end shrinks past it", func() {
		// 17:00 -> 16:30 leaves the 16:00-17:00 gap 30 minutes long, above
		// the default 15-minute floor.
		result, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), weekdayPrefs("09:00", "16:30"))
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ToDelete).To(BeEmpty())
		Expect(result.ToCreate).To(BeEmpty())
		Expect(result.ToUpdate).To(HaveLen(1))
		Expect(result.ToUpdate[0].StartTime).To(Equal(960))
		Expect(result.ToUpdate[0].EndTime).To(Equal(990))
		Expect(result.ToUpdate[0].DurationMinutes).To(Equal(30))
		Expect(result.ToUpdate[0].ModifiedBy).To(Equal(model.ModifiedBySystem))
	})

	It("deletes a truncated gap that falls below the minimum duration", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("09:00", "16:20")
		newPrefs.MinGapMinutes = 45

		result, err := schedule.Reconcile(userID, nil, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ToUpdate).To(BeEmpty())
		Expect(result.ToDelete).To(HaveLen(1))
		Expect(result.ToDelete[0].StartTime).To(Equal(960))
	})

	It("keeps a gap truncated to exactly the minimum duration", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("09:00", "16:45")
		newPrefs.MinGapMinutes = 45

		result, err := schedule.Reconcile(userID, nil, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ToDelete).To(BeEmpty())
		Expect(result.ToUpdate).To(HaveLen(1))
		Expect(result.ToUpdate[0].DurationMinutes).To(Equal(45))
	})

	It("deletes gaps that fall entirely outside the new hours", func() {
		result, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), weekdayPrefs("12:00", "17:00"))
		Expect(err).NotTo(HaveOccurred())

		// 09-10, 10-11, 11-12 are wholly before the new start.
		Expect(result.ToDelete).To(HaveLen(3))
		Expect(result.ToUpdate).To(BeEmpty())
		Expect(result.ToCreate).To(BeEmpty())
	})

	It("fills newly added morning and evening ranges with hourly gaps", func() {
		result, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), weekdayPrefs("08:00", "18:30"))
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ToDelete).To(BeEmpty())
		Expect(result.ToUpdate).To(BeEmpty())
		// 08:00-09:00, then 17:00-18:00 and 18:00-18:30.
		Expect(result.ToCreate).To(HaveLen(3))
		Expect(result.ToCreate[0].StartTime).To(Equal(480))
		Expect(result.ToCreate[0].EndTime).To(Equal(540))
		Expect(result.ToCreate[1].StartTime).To(Equal(1020))
		Expect(result.ToCreate[2].EndTime).To(Equal(1110))
	})

	It("skips widened slivers below the minimum duration", func() {
		newPrefs := weekdayPrefs("08:50", "17:00")
		newPrefs.MinGapMinutes = 15

		result, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), newPrefs)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ToCreate).To(BeEmpty()) // 10-minute sliver dropped
	})

	It("deletes every gap on a day removed from the schedule", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs.WorkingDays = []string{"tuesday", "wednesday", "thursday", "friday"}

		result, err := schedule.Reconcile(userID, nil, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.ToDelete).To(HaveLen(len(existing)))
		Expect(result.ToCreate).To(BeEmpty())
		Expect(result.ToUpdate).To(BeEmpty())
	})

	It("generates a full day for a date newly added to the schedule", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs.WorkingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
		newPrefs.IncludeWeekends = true

		result, err := schedule.Reconcile(userID, []time.Time{saturday}, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())

		expected, err := schedule.GenerateDayGaps(userID, saturday, newPrefs)
		Expect(err).NotTo(HaveOccurred())

		var saturdayCreates []model.Gap
		for _, g := range result.ToCreate {
			if schedule.DateKey(g.Date) == schedule.DateKey(saturday) {
				saturdayCreates = append(saturdayCreates, g)
			}
		}
		Expect(saturdayCreates).To(Equal(expected))
		Expect(result.ToDelete).To(BeEmpty())
		Expect(result.ToUpdate).To(BeEmpty())
	})

	It("leaves user-split remainders alone when they sit inside the new hours", func() {
		parentID := int64(3)
		existing = append(existing[:2], model.Gap{
			ID: 900, UserID: userID, Date: monday,
			StartTime: 660, EndTime: 675, DurationMinutes: 15,
			ParentGapID: &parentID, OriginalGapID: &parentID,
			ModifiedBy: model.ModifiedByUser,
		})

		result, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), weekdayPrefs("09:00", "17:00"))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Empty()).To(BeTrue())
	})

	It("rejects new preferences whose end precedes their start", func() {
		_, err := schedule.Reconcile(userID, nil, existing,
			weekdayPrefs("09:00", "17:00"), weekdayPrefs("17:00", "09:00"))
		var invalidErr *schedule.InvalidPreferencesError
		Expect(err).To(BeAssignableToTypeOf(invalidErr))
	})

	It("is idempotent: applying the result then reconciling again yields nothing", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("08:00", "16:30")

		result, err := schedule.Reconcile(userID, nil, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())
		next := applyResult(existing, result)
		Expect(schedule.ValidateGapSet(next)).To(BeEmpty())

		again, err := schedule.Reconcile(userID, nil, next, newPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Empty()).To(BeTrue())
	})

	It("never produces an overlapping gap set", func() {
		oldPrefs := weekdayPrefs("09:00", "17:00")
		newPrefs := weekdayPrefs("07:30", "19:15")
		newPrefs.WorkingDays = []string{"monday", "saturday"}
		newPrefs.IncludeWeekends = true

		result, err := schedule.Reconcile(userID, []time.Time{saturday}, existing, oldPrefs, newPrefs)
		Expect(err).NotTo(HaveOccurred())
		Expect(schedule.ValidateGapSet(applyResult(existing, result))).To(BeEmpty())
	})
})
