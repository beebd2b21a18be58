package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "civicpulse/internal/interfaces/http/handlers/complaint"
	rewardshandlers "civicpulse/internal/interfaces/http/handlers/rewards"
	"civicpulse/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.Handler
	RewardsHandler   *rewardshandlers.Handler
	// RateLimiter is optional; nil disables throttling of submissions.
	RateLimiter *middleware.RateLimiter
}

// SetupComplaintRoutes registers the citizen-facing endpoints. None of them
// require authentication.
func SetupComplaintRoutes(api *gin.RouterGroup, config *ComplaintRouteConfig) {
	complaints := api.Group("/complaints")
	{
		submit := []gin.HandlerFunc{}
		if config.RateLimiter != nil {
			submit = append(submit, config.RateLimiter.Limit())
		}
		submit = append(submit, config.ComplaintHandler.FileComplaint)

		complaints.POST("", submit...)
		complaints.GET("", config.ComplaintHandler.ListComplaints)
		complaints.GET("/:id", config.ComplaintHandler.GetComplaint)
	}

	api.POST("/classify", config.ComplaintHandler.Classify)
	api.GET("/rewards", config.RewardsHandler.GetSummary)
}
