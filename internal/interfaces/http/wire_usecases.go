package http

import (
	authUsecases "civicpulse/internal/application/auth/usecases"
	"civicpulse/internal/application/complaint/usecases"
	"civicpulse/internal/infrastructure/auth"
	"civicpulse/internal/infrastructure/export"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	fileComplaintUC  *usecases.FileComplaintUseCase
	listComplaintsUC *usecases.ListComplaintsUseCase
	getComplaintUC   *usecases.GetComplaintUseCase
	updateStatusUC   *usecases.UpdateStatusUseCase
	getStatsUC       *usecases.GetStatsUseCase
	classifyUC       *usecases.ClassifyTextUseCase
	exportUC         *usecases.ExportComplaintsUseCase

	adminLoginUC *authUsecases.AdminLoginUseCase
}

func (c *Container) newUseCases() *allUseCases {
	log := c.log
	repo := c.repos.complaintRepo

	return &allUseCases{
		fileComplaintUC: usecases.NewFileComplaintUseCase(
			repo,
			c.classifier,
			c.ledger,
			c.publisher,
			c.textSvc,
			c.clock,
			usecases.FileComplaintConfig{
				Delay:              c.cfg.Submission.Delay,
				PointsPerComplaint: c.cfg.Submission.PointsPerComplaint,
			},
			log,
		),
		listComplaintsUC: usecases.NewListComplaintsUseCase(repo, log),
		getComplaintUC:   usecases.NewGetComplaintUseCase(repo, log),
		updateStatusUC:   usecases.NewUpdateStatusUseCase(repo, c.publisher, c.notifier, c.clock, log),
		getStatsUC:       usecases.NewGetStatsUseCase(repo, c.clock, log),
		classifyUC:       usecases.NewClassifyTextUseCase(c.classifier, log),
		exportUC:         usecases.NewExportComplaintsUseCase(repo, export.ComplaintsXLSX, c.clock, log),

		adminLoginUC: authUsecases.NewAdminLoginUseCase(
			auth.NewBcryptHasher(c.cfg.Auth.BcryptCost),
			c.jwtSvc,
			c.workIDHash,
			c.sessionTTL(),
			c.clock,
			log,
		),
	}
}
