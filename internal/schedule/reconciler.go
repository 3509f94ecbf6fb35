package schedule

import (
	"sort"
	"time"

	"timegrid.app/scheduler/internal/model"
)

// ReconcileResult is the three disjoint mutation sets a preference change
// produces. The caller applies them delete -> update -> create so no reader
// ever observes a transient overlap.
type ReconcileResult struct {
	ToCreate []model.Gap
	ToDelete []model.Gap
	ToUpdate []model.Gap
}

// Empty reports whether the reconciliation is a no-op.
func (r ReconcileResult) Empty() bool {
	return len(r.ToCreate) == 0 && len(r.ToDelete) == 0 && len(r.ToUpdate) == 0
}

// DeleteIDs returns the ids of the gaps slated for deletion.
func (r ReconcileResult) DeleteIDs() []int64 {
	ids := make([]int64, len(r.ToDelete))
	for i, g := range r.ToDelete {
		ids[i] = g.ID
	}
	return ids
}

// Reconcile classifies every existing gap against the transition from
// oldPrefs to newPrefs and emits the mutations that bring the gap set in
// line with the new work hours.
//
// candidateDates extends the evaluation beyond dates that already hold gaps,
// so that a day newly added to the schedule (no existing gaps to classify)
// still gets generated. The caller passes the current window's dates;
// knowledge of "today" stays out of this function.
//
// Per date:
//   - working -> non-working: every gap on the date is deleted
//   - non-working -> working: a fresh day partition is created
//   - still non-working: nothing
//   - still working: gaps wholly outside the new hours are deleted; gaps
//     straddling a boundary are truncated, and dropped instead when the
//     truncated duration falls below the minimum (a result of exactly the
//     minimum is kept); ranges the new hours added are filled with fresh
//     hourly gaps
func Reconcile(userID int64, candidateDates []time.Time, existing []model.Gap, oldPrefs, newPrefs model.WorkPreferences) (ReconcileResult, error) {
	oldStart, err := ToMinutes(oldPrefs.WorkStart)
	if err != nil {
		return ReconcileResult{}, err
	}
	oldEnd, err := ToMinutes(oldPrefs.WorkEnd)
	if err != nil {
		return ReconcileResult{}, err
	}
	newStart, err := ToMinutes(newPrefs.WorkStart)
	if err != nil {
		return ReconcileResult{}, err
	}
	newEnd, err := ToMinutes(newPrefs.WorkEnd)
	if err != nil {
		return ReconcileResult{}, err
	}
	if newStart >= newEnd {
		return ReconcileResult{}, &InvalidPreferencesError{WorkStart: newPrefs.WorkStart, WorkEnd: newPrefs.WorkEnd}
	}

	byDate := make(map[string][]model.Gap)
	dates := make(map[string]time.Time)
	for _, g := range existing {
		key := DateKey(g.Date)
		byDate[key] = append(byDate[key], g)
		dates[key] = DateOf(g.Date)
	}
	for _, d := range candidateDates {
		key := DateKey(d)
		if _, ok := dates[key]; !ok {
			dates[key] = DateOf(d)
		}
	}

	keys := make([]string, 0, len(dates))
	for key := range dates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	minGap := newPrefs.MinGap()
	var result ReconcileResult

	for _, key := range keys {
		date := dates[key]
		dayGaps := byDate[key]
		wasWorking := oldPrefs.IsWorkingDay(date)
		isWorking := newPrefs.IsWorkingDay(date)

		switch {
		case wasWorking && !isWorking:
			result.ToDelete = append(result.ToDelete, dayGaps...)

		case !wasWorking && isWorking:
			result.ToCreate = append(result.ToCreate, HourlyPartition(userID, date, newStart, newEnd)...)

		case !wasWorking && !isWorking:
			// No gaps expected or present.

		default:
			reconcileWorkingDay(dayGaps, newStart, newEnd, minGap, &result)

			if newStart < oldStart {
				appendAtLeast(&result.ToCreate, HourlyPartition(userID, date, newStart, oldStart), minGap)
			}
			if newEnd > oldEnd {
				appendAtLeast(&result.ToCreate, HourlyPartition(userID, date, oldEnd, newEnd), minGap)
			}
		}
	}

	return result, nil
}

// reconcileWorkingDay classifies the existing gaps of a day that stays
// working: delete those wholly outside the new hours, truncate those that
// straddle a boundary, drop truncations below the minimum duration.
func reconcileWorkingDay(dayGaps []model.Gap, newStart, newEnd, minGap int, result *ReconcileResult) {
	for _, g := range dayGaps {
		if g.EndTime <= newStart || g.StartTime >= newEnd {
			result.ToDelete = append(result.ToDelete, g)
			continue
		}

		start, end := g.StartTime, g.EndTime
		if start < newStart {
			start = newStart
		}
		if end > newEnd {
			end = newEnd
		}
		if start == g.StartTime && end == g.EndTime {
			continue // fully inside the new hours, untouched
		}

		if end-start < minGap {
			result.ToDelete = append(result.ToDelete, g)
			continue
		}

		g.StartTime = start
		g.EndTime = end
		g.DurationMinutes = end - start
		g.ModifiedBy = model.ModifiedBySystem
		result.ToUpdate = append(result.ToUpdate, g)
	}
}

func appendAtLeast(dst *[]model.Gap, gaps []model.Gap, minGap int) {
	for _, g := range gaps {
		if g.DurationMinutes >= minGap {
			*dst = append(*dst, g)
		}
	}
}
