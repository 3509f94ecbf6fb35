package schedule

import "time"

// Rolling window bounds, in days relative to "today". The preload horizon is
// populated opportunistically so the UI never scrolls into an empty region.
const (
	WindowDaysBack  = 7
	WindowDaysAhead = 7
	PreloadDays     = 3
)

// Window is the materialized date range for one invocation. It is always
// computed from a caller-supplied today — never from a global clock — so
// midnight rollover is handled by re-invocation and tests can pin dates.
type Window struct {
	Start      time.Time // today - WindowDaysBack
	End        time.Time // today + WindowDaysAhead
	PreloadEnd time.Time // End + PreloadDays
}

// WindowAround computes the rolling window for the given today.
func WindowAround(today time.Time) Window {
	day := DateOf(today)
	return Window{
		Start:      day.AddDate(0, 0, -WindowDaysBack),
		End:        day.AddDate(0, 0, WindowDaysAhead),
		PreloadEnd: day.AddDate(0, 0, WindowDaysAhead+PreloadDays),
	}
}

// Dates enumerates every date in the window, through the preload horizon
// when includePreload is set.
func (w Window) Dates(includePreload bool) []time.Time {
	end := w.End
	if includePreload {
		end = w.PreloadEnd
	}
	var dates []time.Time
	for d := w.Start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains reports whether a date falls inside [Start, End].
func (w Window) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// MissingDates returns every window date (including the preload horizon) that
// has no gaps yet, keyed by DateKey. Non-working days are not special-cased
// here: the generator returns nothing for them and the caller stores nothing,
// so they stay permanently "missing" and permanently skipped.
func MissingDates(today time.Time, existing map[string]bool) []time.Time {
	var missing []time.Time
	for _, d := range WindowAround(today).Dates(true) {
		if !existing[DateKey(d)] {
			missing = append(missing, d)
		}
	}
	return missing
}

// DatesToPrune returns the dates strictly before the window start. Advisory
// cleanup: a stale date outside the window is only a storage cost.
func DatesToPrune(today time.Time, existingDates []time.Time) []time.Time {
	start := WindowAround(today).Start
	var prune []time.Time
	for _, d := range existingDates {
		if DateOf(d).Before(start) {
			prune = append(prune, DateOf(d))
		}
	}
	return prune
}
