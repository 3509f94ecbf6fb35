package router

import (
	"github.com/gin-gonic/gin"

	"timegrid.app/scheduler/internal/http/handler"
)

func ScheduleRouter(group *gin.RouterGroup, h *handler.GapHandler) {
	group.POST("/days", h.InitializeDay)
	group.POST("/tasks", h.ScheduleTask)
	group.GET("/gaps", h.ListGaps)
	group.POST("/reconcile", h.Reconcile)
	group.POST("/window/ensure", h.EnsureWindow)
	group.POST("/window/prune", h.PruneWindow)
}
