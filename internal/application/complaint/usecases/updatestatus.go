package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"civicpulse/internal/application/complaint/dto"
	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/goroutine"
	"civicpulse/internal/shared/lock"
	"civicpulse/internal/shared/logger"
)

type UpdateStatusCommand struct {
	ComplaintID     string
	Status          string
	CompletionPhoto *string
}

type UpdateStatusResult struct {
	Complaint *dto.ComplaintDTO `json:"complaint"`
	OldStatus string            `json:"old_status"`
	NewStatus string            `json:"new_status"`
}

type UpdateStatusUseCase struct {
	repo      complaint.Repository
	publisher complaint.EventPublisher
	notifier  complaint.Notifier
	locks     *lock.KeyedMutex
	clock     biztime.Clock
	logger    logger.Interface
}

func NewUpdateStatusUseCase(
	repo complaint.Repository,
	publisher complaint.EventPublisher,
	notifier complaint.Notifier,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		locks:     lock.NewKeyedMutex(),
		clock:     clock,
		logger:    logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "complaint_id", cmd.ComplaintID, "status", cmd.Status)

	newStatus, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid update status command", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	unlock := uc.locks.Lock(cmd.ComplaintID)
	defer unlock()

	now := uc.clock.Now()
	var oldStatus vo.ComplaintStatus
	updated, err := uc.repo.UpdateStatus(ctx, cmd.ComplaintID, func(c *complaint.Complaint) error {
		oldStatus = c.Status()
		return c.ChangeStatus(newStatus, cmd.CompletionPhoto, now)
	})
	if err != nil {
		switch {
		case stderrors.Is(err, complaint.ErrInvalidTransition):
			uc.logger.Warnw("rejected status transition",
				"complaint_id", cmd.ComplaintID,
				"from", oldStatus,
				"to", newStatus,
			)
			return nil, errors.NewInvalidTransitionError(
				fmt.Sprintf("cannot move complaint from %s to %s", oldStatus, newStatus),
			)
		case stderrors.Is(err, complaint.ErrInvalidStatus):
			return nil, errors.NewValidationError(err.Error())
		default:
			uc.logger.Errorw("failed to update complaint status", "complaint_id", cmd.ComplaintID, "error", err)
			return nil, errors.NewInternalError("failed to update complaint status")
		}
	}
	if updated == nil {
		uc.logger.Warnw("complaint not found", "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %s not found", cmd.ComplaintID))
	}

	uc.dispatch(ctx, updated, oldStatus, now)

	uc.logger.Infow("complaint status changed successfully",
		"complaint_id", cmd.ComplaintID,
		"old_status", oldStatus,
		"new_status", updated.Status(),
	)

	return &UpdateStatusResult{
		Complaint: dto.ToComplaintDTO(updated),
		OldStatus: oldStatus.String(),
		NewStatus: updated.Status().String(),
	}, nil
}

// dispatch fans the change out to subscribers and, on resolution, to the
// reporter. Neither affects the result of the update.
func (uc *UpdateStatusUseCase) dispatch(ctx context.Context, c *complaint.Complaint, oldStatus vo.ComplaintStatus, now time.Time) {
	event := complaint.NewStatusChangedEvent(c, oldStatus.String(), now)
	goroutine.SafeGo(uc.logger, "publish-status-changed", func() {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Warnw("failed to publish complaint event", "complaint_id", event.ComplaintID, "error", err)
		}
	})

	if !c.Status().IsResolved() {
		return
	}
	goroutine.SafeGo(uc.logger, "notify-resolved", func() {
		if err := uc.notifier.NotifyResolved(ctx, c); err != nil {
			uc.logger.Warnw("failed to send completion notice", "complaint_id", c.ID(), "error", err)
		}
	})
}

func (uc *UpdateStatusUseCase) validateCommand(cmd UpdateStatusCommand) (vo.ComplaintStatus, error) {
	if cmd.ComplaintID == "" {
		return "", errors.NewValidationError("complaint ID is required")
	}

	status, err := vo.NewComplaintStatus(cmd.Status)
	if err != nil {
		return "", errors.NewValidationError("invalid status", err.Error())
	}

	return status, nil
}
