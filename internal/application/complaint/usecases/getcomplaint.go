package usecases

import (
	"context"
	"fmt"

	"civicpulse/internal/application/complaint/dto"
	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID string
}

type GetComplaintUseCase struct {
	repo   complaint.Repository
	logger logger.Interface
}

func NewGetComplaintUseCase(repo complaint.Repository, logger logger.Interface) *GetComplaintUseCase {
	return &GetComplaintUseCase{repo: repo, logger: logger}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == "" {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.repo.FindByID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to get complaint")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %s not found", query.ComplaintID))
	}

	return dto.ToComplaintDetailDTO(c), nil
}
