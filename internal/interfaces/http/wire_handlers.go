package http

import (
	"civicpulse/internal/interfaces/http/handlers"
	adminHandlers "civicpulse/internal/interfaces/http/handlers/admin"
	complaintHandlers "civicpulse/internal/interfaces/http/handlers/complaint"
	rewardsHandlers "civicpulse/internal/interfaces/http/handlers/rewards"
	"civicpulse/internal/shared/version"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	complaintHandler *complaintHandlers.Handler
	adminHandler     *adminHandlers.Handler
	rewardsHandler   *rewardsHandlers.Handler
}

func (c *Container) newHandlers() *allHandlers {
	checks := map[string]handlers.Pinger{}
	if c.infra.Redis != nil {
		checks["redis"] = &redisPinger{client: c.infra.Redis}
	}
	if c.infra.DB != nil {
		checks["database"] = &gormPinger{db: c.infra.DB}
	}

	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(version.Current(), checks, c.log),
		complaintHandler: complaintHandlers.NewHandler(
			c.ucs.fileComplaintUC,
			c.ucs.listComplaintsUC,
			c.ucs.getComplaintUC,
			c.ucs.updateStatusUC,
			c.ucs.classifyUC,
			c.log,
		),
		adminHandler:   adminHandlers.NewHandler(c.ucs.adminLoginUC, c.ucs.getStatsUC, c.ucs.exportUC, c.log),
		rewardsHandler: rewardsHandlers.NewHandler(c.ledger),
	}
}
