package schedule

import (
	"fmt"
	"sort"

	"timegrid.app/scheduler/internal/model"
)

type ViolationKind string

const (
	ViolationOverlap    ViolationKind = "overlap"
	ViolationDegenerate ViolationKind = "degenerate"
)

// Violation describes an internal-consistency breach in a gap set. These are
// bugs, not user errors: they surface as 500s and are never silently repaired.
type Violation struct {
	Kind       ViolationKind
	GapID      int64
	OtherGapID int64 // set for overlap violations
	Detail     string
}

func (v Violation) String() string {
	if v.Kind == ViolationOverlap {
		return fmt.Sprintf("%s: gap %d vs gap %d: %s", v.Kind, v.GapID, v.OtherGapID, v.Detail)
	}
	return fmt.Sprintf("%s: gap %d: %s", v.Kind, v.GapID, v.Detail)
}

// ValidateGapSet checks the no-overlap and positive-duration invariants over
// an arbitrary gap set. Gaps are grouped by date and walked in start order;
// adjacent pairs whose intervals intersect produce an overlap violation.
// Read-only; run defensively before committing any write batch.
func ValidateGapSet(gaps []model.Gap) []Violation {
	var violations []Violation

	byDate := make(map[string][]model.Gap)
	for _, g := range gaps {
		if g.DurationMinutes != g.EndTime-g.StartTime {
			violations = append(violations, Violation{
				Kind:   ViolationDegenerate,
				GapID:  g.ID,
				Detail: fmt.Sprintf("duration %d != end %d - start %d", g.DurationMinutes, g.EndTime, g.StartTime),
			})
		}
		if g.DurationMinutes <= 0 {
			violations = append(violations, Violation{
				Kind:   ViolationDegenerate,
				GapID:  g.ID,
				Detail: fmt.Sprintf("non-positive duration %d", g.DurationMinutes),
			})
		}
		key := DateKey(g.Date)
		byDate[key] = append(byDate[key], g)
	}

	for _, dayGaps := range byDate {
		sort.Slice(dayGaps, func(i, j int) bool {
			return dayGaps[i].StartTime < dayGaps[j].StartTime
		})
		for i := 0; i+1 < len(dayGaps); i++ {
			if dayGaps[i].EndTime > dayGaps[i+1].StartTime {
				violations = append(violations, Violation{
					Kind:       ViolationOverlap,
					GapID:      dayGaps[i].ID,
					OtherGapID: dayGaps[i+1].ID,
					Detail: fmt.Sprintf("[%d, %d) intersects [%d, %d)",
						dayGaps[i].StartTime, dayGaps[i].EndTime,
						dayGaps[i+1].StartTime, dayGaps[i+1].EndTime),
				})
			}
		}
	}

	return violations
}
