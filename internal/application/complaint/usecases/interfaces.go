package usecases

import (
	"context"

	"civicpulse/internal/application/complaint/dto"
)

type FileComplaintExecutor interface {
	Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type ClassifyTextExecutor interface {
	Execute(ctx context.Context, cmd ClassifyTextCommand) (*ClassifyTextResult, error)
}

type ExportComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ExportComplaintsResult, error)
}
