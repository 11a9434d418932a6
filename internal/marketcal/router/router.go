package router

import (
	"marketcal/internal/marketcal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.CalendarHandler, jwtSecret []byte) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)
	v1.Use(handler.AuthMiddleware(jwtSecret))

	// Calendars
	v1.POST("/calendars", h.PostCalendar)
	v1.GET("/calendars", h.GetCalendars)
	v1.GET("/calendars/:id", h.GetCalendar)
	v1.PUT("/calendars/:id", h.PutCalendar)
	v1.DELETE("/calendars/:id", h.DeleteCalendar)

	// Swimlanes
	v1.POST("/calendars/:id/swimlanes", h.PostSwimlane)
	v1.GET("/calendars/:id/swimlanes", h.GetSwimlanes)
	v1.PUT("/swimlanes/:id", h.PutSwimlane)
	v1.DELETE("/swimlanes/:id", h.DeleteSwimlane)

	// Campaigns
	v1.POST("/calendars/:id/campaigns", h.PostCampaign)
	v1.GET("/calendars/:id/campaigns", h.GetCampaigns)
	v1.GET("/campaigns/:id", h.GetCampaign)
	v1.PUT("/campaigns/:id", h.PutCampaign)
	v1.DELETE("/campaigns/:id", h.DeleteCampaign)

	// Activities & history
	v1.POST("/calendars/:id/activities", h.PostActivity)
	v1.GET("/calendars/:id/activities", h.GetActivities)
	v1.GET("/activities/:id", h.GetActivity)
	v1.PUT("/activities/:id", h.PutActivity)
	v1.DELETE("/activities/:id", h.DeleteActivity)
	v1.GET("/activities/:id/history", h.GetActivityHistory)
	v1.POST("/history/:id/undo", h.PostUndo)

	// Sharing
	v1.GET("/calendars/:id/permissions", h.GetCalendarPermissions)
	v1.POST("/calendars/:id/permissions", h.PostCalendarPermission)
	v1.PUT("/calendars/:id/permissions/:userId", h.PutCalendarPermission)
	v1.DELETE("/calendars/:id/permissions/:userId", h.DeleteCalendarPermission)
	v1.GET("/campaigns/:id/permissions", h.GetCampaignPermissions)
	v1.POST("/campaigns/:id/permissions", h.PostCampaignPermission)
	v1.PUT("/campaigns/:id/permissions/:userId", h.PutCampaignPermission)
	v1.DELETE("/campaigns/:id/permissions/:userId", h.DeleteCampaignPermission)

	// Notifications
	v1.GET("/notifications", h.GetNotifications)
	v1.PUT("/notifications/:id/read", h.PutNotificationRead)
}
