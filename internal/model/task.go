package model

import "time"

// Task is a scheduled activity that consumed part (or all) of a gap.
// ScheduledGapID references the consumed gap; the gap row itself is deleted
// when the task is created, so the reference is lineage, not a foreign key.
type Task struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ScheduledGapID int64     `json:"scheduled_gap_id"`
	Date           time.Time `json:"date"`
	StartTime      int       `json:"start_time"`
	EndTime        int       `json:"end_time"`
	Title          string    `json:"title"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
