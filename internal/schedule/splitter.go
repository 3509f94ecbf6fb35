package schedule

import "timegrid.app/scheduler/internal/model"

// SplitResult holds the remainder gaps left after a task consumes part of a
// gap. Either side may be nil; both nil means the task consumed the gap
// exactly, which is valid.
type SplitResult struct {
	Before *model.Gap
	After  *model.Gap
}

// Remainders returns the non-nil remainder gaps in time order.
func (r SplitResult) Remainders() []model.Gap {
	var gaps []model.Gap
	if r.Before != nil {
		gaps = append(gaps, *r.Before)
	}
	if r.After != nil {
		gaps = append(gaps, *r.After)
	}
	return gaps
}

// SplitGapForTask carves the task interval [taskStart, taskEnd) out of a gap,
// producing up to two remainder gaps. Remainders record lineage: ParentGapID
// points at the consumed gap, OriginalGapID at the root ancestor of the split
// chain. The caller owns the atomic triad of deleting the original, inserting
// the remainders, and creating the task record.
func SplitGapForTask(gap model.Gap, taskStart, taskEnd int) (SplitResult, error) {
	if taskStart < gap.StartTime || taskEnd > gap.EndTime || taskStart >= taskEnd {
		return SplitResult{}, &OutOfBoundsError{
			GapID:     gap.ID,
			GapStart:  gap.StartTime,
			GapEnd:    gap.EndTime,
			TaskStart: taskStart,
			TaskEnd:   taskEnd,
		}
	}

	var result SplitResult
	if taskStart > gap.StartTime {
		result.Before = remainder(gap, gap.StartTime, taskStart)
	}
	if taskEnd < gap.EndTime {
		result.After = remainder(gap, taskEnd, gap.EndTime)
	}
	return result, nil
}

func remainder(parent model.Gap, start, end int) *model.Gap {
	parentID := parent.ID
	rootID := parent.RootID()
	return &model.Gap{
		UserID:          parent.UserID,
		Date:            parent.Date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: end - start,
		ParentGapID:     &parentID,
		OriginalGapID:   &rootID,
		ModifiedBy:      model.ModifiedByUser,
	}
}
