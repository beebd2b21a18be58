package usecases

import (
	"context"

	"civicpulse/internal/application/complaint/dto"
	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

type GetStatsUseCase struct {
	repo   complaint.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewGetStatsUseCase(repo complaint.Repository, clock biztime.Clock, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{repo: repo, clock: clock, logger: logger}
}

// Execute computes analytics over every stored complaint. "Today" starts at
// midnight in the business timezone.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list complaints for stats", "error", err)
		return nil, errors.NewInternalError("failed to compute statistics")
	}

	stats := complaint.ComputeStats(all, biztime.StartOfDayUTC(uc.clock.Now()))
	return dto.ToStatsDTO(stats), nil
}
