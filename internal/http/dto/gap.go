package dto

import (
	"time"

	"timegrid.app/scheduler/internal/model"
	"timegrid.app/scheduler/internal/service"
)

// WorkPreferences mirrors the stored user preference document. WorkingDays is
// deliberately loose: clients have historically sent day names, indexes and
// name->bool maps, and all of them are normalized server-side.
type WorkPreferences struct {
	WorkStart       string `json:"work_start" binding:"required"`
	WorkEnd         string `json:"work_end" binding:"required"`
	WorkingDays     any    `json:"working_days,omitempty"`
	IncludeWeekends bool   `json:"include_weekends"`
	MinGapMinutes   int    `json:"min_gap_minutes,omitempty" binding:"omitempty,min=1"`
}

func (p WorkPreferences) ToModel() model.WorkPreferences {
	return model.WorkPreferences{
		WorkStart:       p.WorkStart,
		WorkEnd:         p.WorkEnd,
		WorkingDays:     p.WorkingDays,
		IncludeWeekends: p.IncludeWeekends,
		MinGapMinutes:   p.MinGapMinutes,
	}
}

type InitializeDayRequest struct {
	Date        string          `json:"date" binding:"required"`
	Preferences WorkPreferences `json:"preferences" binding:"required"`
}

type ScheduleTaskRequest struct {
	GapID     int64  `json:"gap_id,string" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Notes     string `json:"notes,omitempty" binding:"omitempty,max=4000"`
}

type ReconcileRequest struct {
	Today          string          `json:"today" binding:"required"`
	OldPreferences WorkPreferences `json:"old_preferences" binding:"required"`
	NewPreferences WorkPreferences `json:"new_preferences" binding:"required"`
}

type EnsureWindowRequest struct {
	Today       string          `json:"today" binding:"required"`
	Preferences WorkPreferences `json:"preferences" binding:"required"`
}

type PruneWindowRequest struct {
	Today string `json:"today" binding:"required"`
}

type GapResponse struct {
	ID              int64     `json:"id,string"`
	UserID          int64     `json:"user_id,string"`
	Date            string    `json:"date"`
	StartTime       int       `json:"start_time"`
	EndTime         int       `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	ParentGapID     *int64    `json:"parent_gap_id,string,omitempty"`
	OriginalGapID   *int64    `json:"original_gap_id,string,omitempty"`
	ModifiedBy      string    `json:"modified_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToGapResponse(gap model.Gap) GapResponse {
	return GapResponse{
		ID:              gap.ID,
		UserID:          gap.UserID,
		Date:            gap.Date.Format(time.DateOnly),
		StartTime:       gap.StartTime,
		EndTime:         gap.EndTime,
		DurationMinutes: gap.DurationMinutes,
		ParentGapID:     gap.ParentGapID,
		OriginalGapID:   gap.OriginalGapID,
		ModifiedBy:      string(gap.ModifiedBy),
		CreatedAt:       gap.CreatedAt,
		UpdatedAt:       gap.UpdatedAt,
	}
}

func ToGapResponses(gaps []model.Gap) []GapResponse {
	responses := make([]GapResponse, len(gaps))
	for i, gap := range gaps {
		responses[i] = ToGapResponse(gap)
	}
	return responses
}

type TaskResponse struct {
	ID             int64     `json:"id,string"`
	UserID         int64     `json:"user_id,string"`
	ScheduledGapID int64     `json:"scheduled_gap_id,string"`
	Date           string    `json:"date"`
	StartTime      int       `json:"start_time"`
	EndTime        int       `json:"end_time"`
	Title          string    `json:"title"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToTaskResponse(task model.Task) TaskResponse {
	return TaskResponse{
		ID:             task.ID,
		UserID:         task.UserID,
		ScheduledGapID: task.ScheduledGapID,
		Date:           task.Date.Format(time.DateOnly),
		StartTime:      task.StartTime,
		EndTime:        task.EndTime,
		Title:          task.Title,
		Notes:          task.Notes,
		CreatedAt:      task.CreatedAt,
	}
}

type ScheduleTaskResponse struct {
	Task       TaskResponse  `json:"task"`
	Remainders []GapResponse `json:"remainders"`
}

func ToScheduleTaskResponse(result service.ScheduleTaskResult) ScheduleTaskResponse {
	return ScheduleTaskResponse{
		Task:       ToTaskResponse(result.Task),
		Remainders: ToGapResponses(result.Remainders),
	}
}

type ReconcileResponse struct {
	Created int64 `json:"created"`
	Deleted int64 `json:"deleted"`
	Updated int64 `json:"updated"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
