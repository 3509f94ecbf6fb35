package router

import (
	"github.com/gin-gonic/gin"

	"timegrid.app/scheduler/internal/http/handler"
	"timegrid.app/scheduler/internal/http/middleware"
	"timegrid.app/scheduler/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireUser())
	{
		gapHandler := handler.NewGapHandler(services.Gaps())
		ScheduleRouter(v1.Group("/schedule"), gapHandler)
	}
}
