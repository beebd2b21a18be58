package http

import (
	"civicpulse/internal/interfaces/http/middleware"
	"civicpulse/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestLogger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	api := c.engine.Group("/api")

	routes.SetupComplaintRoutes(api, &routes.ComplaintRouteConfig{
		ComplaintHandler: c.hdlrs.complaintHandler,
		RewardsHandler:   c.hdlrs.rewardsHandler,
		RateLimiter:      c.submitLimiter,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:     c.hdlrs.adminHandler,
		ComplaintHandler: c.hdlrs.complaintHandler,
		AuthMiddleware:   c.authMiddleware,
		RateLimiter:      c.loginLimiter,
	})
}
