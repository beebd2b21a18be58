package usecases

import (
	"context"
	"time"

	"civicpulse/internal/application/complaint/dto"
	rewardsapp "civicpulse/internal/application/rewards"
	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/goroutine"
	"civicpulse/internal/shared/id"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/services/text"
	"civicpulse/internal/shared/utils"
)

type FileComplaintCommand struct {
	Title       string   `json:"title" validate:"notblank,max=200"`
	Description string   `json:"description" validate:"notblank,max=5000"`
	Location    string   `json:"location" validate:"notblank"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude,required_with=Longitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude,required_with=Latitude"`
	Name        string   `json:"name" validate:"max=200"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Attachments []string `json:"attachments" validate:"max=10,dive,notblank"`
}

type FileComplaintResult struct {
	Complaint     *dto.ComplaintDTO `json:"complaint"`
	PointsAwarded int               `json:"points_awarded"`
	TotalPoints   int               `json:"total_points"`
	NewBadges     []string          `json:"new_badges"`
}

// ComplaintClassifier picks the department for a description.
type ComplaintClassifier interface {
	Classify(description string) vo.Department
}

// PointsCrediter rewards the citizen for a submission.
type PointsCrediter interface {
	CreditSubmission(ctx context.Context, n int) (*rewardsapp.CreditResult, error)
}

// FileComplaintConfig holds the tunables of the submission flow.
type FileComplaintConfig struct {
	Delay              time.Duration
	PointsPerComplaint int
}

type FileComplaintUseCase struct {
	repo       complaint.Repository
	classifier ComplaintClassifier
	ledger     PointsCrediter
	publisher  complaint.EventPublisher
	text       text.Service
	clock      biztime.Clock
	cfg        FileComplaintConfig
	newID      func() (string, error)
	logger     logger.Interface
}

func NewFileComplaintUseCase(
	repo complaint.Repository,
	classifier ComplaintClassifier,
	ledger PointsCrediter,
	publisher complaint.EventPublisher,
	textSvc text.Service,
	clock biztime.Clock,
	cfg FileComplaintConfig,
	logger logger.Interface,
) *FileComplaintUseCase {
	return &FileComplaintUseCase{
		repo:       repo,
		classifier: classifier,
		ledger:     ledger,
		publisher:  publisher,
		text:       textSvc,
		clock:      clock,
		cfg:        cfg,
		newID:      id.NewComplaintID,
		logger:     logger,
	}
}

func (uc *FileComplaintUseCase) Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error) {
	uc.logger.Infow("executing file complaint use case", "title", cmd.Title, "location", cmd.Location)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid file complaint command", "error", err)
		return nil, err
	}

	sub := complaint.Submission{
		Title:       uc.text.Clean(cmd.Title),
		Description: uc.text.Clean(cmd.Description),
		Location:    uc.text.Clean(cmd.Location),
		Name:        uc.text.Clean(cmd.Name),
		Email:       cmd.Email,
	}
	for _, a := range cmd.Attachments {
		if cleaned := uc.text.Clean(a); cleaned != "" {
			sub.Attachments = append(sub.Attachments, cleaned)
		}
	}
	if cmd.Latitude != nil && cmd.Longitude != nil {
		gps, err := vo.NewGeoPoint(*cmd.Latitude, *cmd.Longitude)
		if err != nil {
			return nil, errors.NewValidationError("invalid GPS location", err.Error())
		}
		sub.GPSLocation = &gps
	}

	// Once accepted the submission runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	if uc.cfg.Delay > 0 {
		time.Sleep(uc.cfg.Delay)
	}

	department := uc.classifier.Classify(sub.Description)

	complaintID, err := uc.newID()
	if err != nil {
		uc.logger.Errorw("failed to generate complaint id", "error", err)
		return nil, errors.NewInternalError("failed to generate complaint id")
	}

	now := uc.clock.Now()
	c, err := complaint.NewComplaint(complaintID, sub, department, uc.cfg.PointsPerComplaint, now)
	if err != nil {
		uc.logger.Warnw("failed to create complaint", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save complaint", "complaint_id", complaintID, "error", err)
		return nil, errors.NewInternalError("failed to save complaint")
	}

	result := &FileComplaintResult{
		Complaint: dto.ToComplaintDTO(c),
		NewBadges: []string{},
	}

	// The complaint is already stored, so a ledger failure is logged rather
	// than reported; retrying would file a duplicate.
	credit, err := uc.ledger.CreditSubmission(ctx, uc.cfg.PointsPerComplaint)
	if err != nil {
		uc.logger.Errorw("failed to credit submission points", "complaint_id", complaintID, "error", err)
	} else {
		result.PointsAwarded = credit.PointsAwarded
		result.TotalPoints = credit.TotalPoints
		if len(credit.NewBadges) > 0 {
			result.NewBadges = credit.NewBadges
		}
	}

	event := complaint.NewFiledEvent(c, now)
	goroutine.SafeGo(uc.logger, "publish-complaint-filed", func() {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Warnw("failed to publish complaint event", "complaint_id", event.ComplaintID, "error", err)
		}
	})

	uc.logger.Infow("complaint filed successfully",
		"complaint_id", complaintID,
		"department", department,
		"points", result.TotalPoints,
	)

	return result, nil
}

func (uc *FileComplaintUseCase) validateCommand(cmd FileComplaintCommand) error {
	return utils.ValidateStruct(cmd)
}
