package schedule

import (
	"time"

	"timegrid.app/scheduler/internal/model"
)

// GenerateDayGaps produces the canonical hourly partition of one work day:
// one gap per hour step from workStart, with the final slice truncated to
// workEnd. Non-working days produce nil. The function is pure — IDs are left
// zero for the store to assign, and idempotent persistence (skip dates that
// already have gaps) is the caller's responsibility.
func GenerateDayGaps(userID int64, date time.Time, prefs model.WorkPreferences) ([]model.Gap, error) {
	if !prefs.IsWorkingDay(date) {
		return nil, nil
	}

	start, err := ToMinutes(prefs.WorkStart)
	if err != nil {
		return nil, err
	}
	end, err := ToMinutes(prefs.WorkEnd)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, &InvalidPreferencesError{WorkStart: prefs.WorkStart, WorkEnd: prefs.WorkEnd}
	}

	return HourlyPartition(userID, date, start, end), nil
}

// HourlyPartition emits system gaps covering [startMin, endMin) in hourly
// steps. The reconciler reuses it on sub-ranges when work hours widen.
func HourlyPartition(userID int64, date time.Time, startMin, endMin int) []model.Gap {
	var gaps []model.Gap
	for hour := startMin; hour < endMin; hour += 60 {
		end := hour + 60
		if end > endMin {
			end = endMin
		}
		gaps = append(gaps, model.Gap{
			UserID:          userID,
			Date:            DateOf(date),
			StartTime:       hour,
			EndTime:         end,
			DurationMinutes: end - hour,
			ModifiedBy:      model.ModifiedBySystem,
		})
	}
	return gaps
}

// DateOf truncates a timestamp to its naive calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey renders a date in the canonical YYYY-MM-DD form used for map keys
// and wire formats.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
