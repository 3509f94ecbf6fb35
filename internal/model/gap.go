package model

import "time"

// ModifiedBy records which actor last touched a gap. It is audit metadata
// only and never drives authorization decisions.
type ModifiedBy string

const (
	ModifiedBySystem ModifiedBy = "system"
	ModifiedByUser   ModifiedBy = "user"
)

// Gap is a half-open free-time interval [StartTime, EndTime) on one calendar
// date, owned by one user. Times are minutes since midnight, local wall clock.
type Gap struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Date            time.Time  `json:"date"`
	StartTime       int        `json:"start_time"`
	EndTime         int        `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	ParentGapID     *int64     `json:"parent_gap_id,omitempty"`
	OriginalGapID   *int64     `json:"original_gap_id,omitempty"`
	ModifiedBy      ModifiedBy `json:"modified_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RootID returns the ultimate ancestor of a split chain: the flattened
// OriginalGapID when present, otherwise the gap itself.
func (g Gap) RootID() int64 {
	if g.OriginalGapID != nil {
		return *g.OriginalGapID
	}
	return g.ID
}

// Overlaps reports whether two half-open intervals on the same date intersect.
func (g Gap) Overlaps(other Gap) bool {
	return g.StartTime < other.EndTime && other.StartTime < g.EndTime
}
