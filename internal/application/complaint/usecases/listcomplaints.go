package usecases

import (
	"context"

	"civicpulse/internal/application/complaint/dto"
	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

type ListComplaintsQuery struct {
	Status     string
	Department string
	Query      string
}

type ListComplaintsResult struct {
	Complaints []*dto.ComplaintDTO
	Total      int
}

type ListComplaintsUseCase struct {
	repo   complaint.Repository
	logger logger.Interface
}

func NewListComplaintsUseCase(repo complaint.Repository, logger logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{repo: repo, logger: logger}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	if query.Status != "" {
		if _, err := vo.NewComplaintStatus(query.Status); err != nil {
			return nil, errors.NewValidationError("invalid status filter", err.Error())
		}
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	matched := complaint.Filter{
		Status:     query.Status,
		Department: query.Department,
		Query:      query.Query,
	}.Apply(all)

	uc.logger.Debugw("complaints listed", "total", len(all), "matched", len(matched))

	return &ListComplaintsResult{
		Complaints: dto.ToComplaintDTOs(matched),
		Total:      len(matched),
	}, nil
}
