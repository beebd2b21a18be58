package usecases

import (
	"context"
	"fmt"
	"time"

	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

// ComplaintRenderer turns complaints into a downloadable document.
type ComplaintRenderer func(complaints []*complaint.Complaint, loc *time.Location) ([]byte, error)

type ExportComplaintsResult struct {
	Filename string
	Data     []byte
	Count    int
}

type ExportComplaintsUseCase struct {
	repo   complaint.Repository
	render ComplaintRenderer
	clock  biztime.Clock
	logger logger.Interface
}

func NewExportComplaintsUseCase(
	repo complaint.Repository,
	render ComplaintRenderer,
	clock biztime.Clock,
	logger logger.Interface,
) *ExportComplaintsUseCase {
	return &ExportComplaintsUseCase{
		repo:   repo,
		render: render,
		clock:  clock,
		logger: logger,
	}
}

// Execute renders the complaints matching query, with the same filter
// semantics as listing.
func (uc *ExportComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ExportComplaintsResult, error) {
	if query.Status != "" {
		if _, err := vo.NewComplaintStatus(query.Status); err != nil {
			return nil, errors.NewValidationError("invalid status filter", err.Error())
		}
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list complaints for export", "error", err)
		return nil, errors.NewInternalError("failed to export complaints")
	}

	matched := complaint.Filter{
		Status:     query.Status,
		Department: query.Department,
		Query:      query.Query,
	}.Apply(all)

	data, err := uc.render(matched, biztime.Location())
	if err != nil {
		uc.logger.Errorw("failed to render complaint export", "count", len(matched), "error", err)
		return nil, errors.NewInternalError("failed to export complaints")
	}

	now := uc.clock.Now().In(biztime.Location())
	uc.logger.Infow("complaints exported", "count", len(matched), "bytes", len(data))

	return &ExportComplaintsResult{
		Filename: fmt.Sprintf("complaints-%s.xlsx", now.Format("20060102-1504")),
		Data:     data,
		Count:    len(matched),
	}, nil
}
