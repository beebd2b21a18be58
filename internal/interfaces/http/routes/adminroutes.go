package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "civicpulse/internal/interfaces/http/handlers/admin"
	complainthandlers "civicpulse/internal/interfaces/http/handlers/complaint"
	"civicpulse/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler     *adminhandlers.Handler
	ComplaintHandler *complainthandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables throttling of login attempts.
	RateLimiter *middleware.RateLimiter
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")

	login := []gin.HandlerFunc{}
	if config.RateLimiter != nil {
		login = append(login, config.RateLimiter.Limit())
	}
	login = append(login, config.AdminHandler.Login)
	admin.POST("/login", login...)

	protected := admin.Group("")
	protected.Use(config.AuthMiddleware.RequireAdmin())
	{
		protected.GET("/stats", config.AdminHandler.Stats)
		protected.GET("/complaints/export", config.AdminHandler.ExportComplaints)
		protected.PATCH("/complaints/:id/status", config.ComplaintHandler.UpdateStatus)
	}
}
