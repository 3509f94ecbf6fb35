package schedule_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"timegrid.app/scheduler/internal/schedule"
)

var _ = Describe("Window", func() {
	today := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC) // a Wednesday afternoon

	It("spans today-7 through today+7 with a 3-day preload", func() {
		w := schedule.WindowAround(today)
		Expect(w.Start).To(Equal(time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)))
		Expect(w.End).To(Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
		Expect(w.PreloadEnd).To(Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
	})

	It("normalizes the supplied now to a date", func() {
		atNoon := schedule.WindowAround(today)
		atMidnight := schedule.WindowAround(schedule.DateOf(today))
		Expect(atNoon).To(Equal(atMidnight))
	})

	It("enumerates 15 dates without preload and 18 with", func() {
		w := schedule.WindowAround(today)
		Expect(w.Dates(false)).To(HaveLen(15))
		Expect(w.Dates(true)).To(HaveLen(18))
	})

	Describe("MissingDates", func() {
		It("returns every date in window and preload when nothing exists", func() {
			missing := schedule.MissingDates(today, nil)
			Expect(missing).To(HaveLen(18))
		})

		It("skips dates that already have gaps", func() {
			existing := map[string]bool{
				"2026-03-04": true,
				"2026-03-05": true,
			}
			missing := schedule.MissingDates(today, existing)
			Expect(missing).To(HaveLen(16))
			for _, d := range missing {
				Expect(existing[schedule.DateKey(d)]).To(BeFalse())
			}
		})
	})

	Describe("DatesToPrune", func() {
		It("flags only dates strictly before the window start", func() {
			dates := []time.Time{
				time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC), // one day outside
				time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), // window start, kept
				time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			}
			prune := schedule.DatesToPrune(today, dates)
			Expect(prune).To(HaveLen(1))
			Expect(prune[0]).To(Equal(time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)))
		})

		It("returns nothing when all dates are inside", func() {
			dates := []time.Time{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
			Expect(schedule.DatesToPrune(today, dates)).To(BeEmpty())
		})
	})
})
