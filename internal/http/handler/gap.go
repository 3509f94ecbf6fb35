package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timegrid.app/scheduler/internal/http/dto"
	"timegrid.app/scheduler/internal/http/middleware"
	"timegrid.app/scheduler/internal/schedule"
	"timegrid.app/scheduler/internal/service"
	"timegrid.app/scheduler/internal/store"
)

type GapHandler struct {
	gapService service.GapService
}

func NewGapHandler(gapService service.GapService) *GapHandler {
	return &GapHandler{gapService: gapService}
}

// InitializeDay handles POST /api/v1/schedule/days.
func (h *GapHandler) InitializeDay(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InitializeDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gaps, err := h.gapService.InitializeDay(ctx, middleware.UserID(c), date, req.Preferences.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gaps": dto.ToGapResponses(gaps)})
}

// ScheduleTask handles POST /api/v1/schedule/tasks.
func (h *GapHandler) ScheduleTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ScheduleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gapService.ScheduleTask(ctx, middleware.UserID(c), service.ScheduleTaskParams{
		GapID: req.GapID,
		Start: req.StartTime,
		End:   req.EndTime,
		Title: req.Title,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleTaskResponse(result))
}

// ListGaps handles GET /api/v1/schedule/gaps?today=YYYY-MM-DD.
func (h *GapHandler) ListGaps(c *gin.Context) {
	ctx := c.Request.Context()

	today, err := parseDate(c.DefaultQuery("today", time.Now().UTC().Format(time.DateOnly)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gaps, err := h.gapService.ListGapsInWindow(ctx, middleware.UserID(c), today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gaps": dto.ToGapResponses(gaps)})
}

// Reconcile handles POST /api/v1/schedule/reconcile.
func (h *GapHandler) Reconcile(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today, err := parseDate(req.Today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.gapService.ReconcilePreferences(ctx, middleware.UserID(c), today,
		req.OldPreferences.ToModel(), req.NewPreferences.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		Created: summary.Created,
		Deleted: summary.Deleted,
		Updated: summary.Updated,
	})
}

// EnsureWindow handles POST /api/v1/schedule/window/ensure.
func (h *GapHandler) EnsureWindow(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EnsureWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today, err := parseDate(req.Today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.gapService.EnsureWindowPopulated(ctx, middleware.UserID(c), today, req.Preferences.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: created})
}

// PruneWindow handles POST /api/v1/schedule/window/prune.
func (h *GapHandler) PruneWindow(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PruneWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today, err := parseDate(req.Today)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.gapService.PruneOutsideWindow(ctx, middleware.UserID(c), today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: deleted})
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

// respondError maps domain errors onto status codes. Anything unrecognized is
// a 500 with a generic body; the detail goes to the log, not the client.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var (
		parseErr   *schedule.ParseError
		rangeErr   *schedule.RangeError
		invalidErr *schedule.InvalidPreferencesError
		oobErr     *schedule.OutOfBoundsError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &rangeErr),
		errors.As(err, &invalidErr), errors.As(err, &oobErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "gap not found"})
	default:
		slog.ErrorContext(ctx, "schedule operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
