package http

import (
	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/domain/rewards"
	"civicpulse/internal/infrastructure/kvstore"
	"civicpulse/internal/infrastructure/repository"
	"civicpulse/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	complaintRepo complaint.Repository
	rewardsRepo   rewards.Repository
}

func newRepositories(store kvstore.Store, log logger.Interface) *repositories {
	return &repositories{
		complaintRepo: repository.NewComplaintRepository(store, log.Named("complaints")),
		rewardsRepo:   repository.NewRewardsRepository(store, log.Named("rewards")),
	}
}
