package schedule

import "fmt"

// ParseError reports a malformed "HH:MM" time string. Always a caller bug,
// surfaced as a 400 and never retried.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Input, e.Reason)
}

// RangeError reports a minutes-since-midnight value outside [0, 1440).
type RangeError struct {
	Minutes int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("minutes %d out of range [0, 1440)", e.Minutes)
}

// InvalidPreferencesError reports work hours where the end does not come
// after the start.
type InvalidPreferencesError struct {
	WorkStart string
	WorkEnd   string
}

func (e *InvalidPreferencesError) Error() string {
	return fmt.Sprintf("work end %q must be after work start %q", e.WorkEnd, e.WorkStart)
}

// OutOfBoundsError reports a task interval that does not fit inside its
// target gap. User-correctable, not a retryable fault.
type OutOfBoundsError struct {
	GapID     int64
	GapStart  int
	GapEnd    int
	TaskStart int
	TaskEnd   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("task interval [%d, %d) does not fit inside gap %d [%d, %d)",
		e.TaskStart, e.TaskEnd, e.GapID, e.GapStart, e.GapEnd)
}
