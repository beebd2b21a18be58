package usecases

import (
	"context"
	"fmt"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

type ClassifyTextCommand struct {
	Text string
}

type ClassifyTextResult struct {
	Department string `json:"department"`
}

// ClassifyTextUseCase previews routing for free text without filing anything.
type ClassifyTextUseCase struct {
	classifier ComplaintClassifier
	logger     logger.Interface
}

func NewClassifyTextUseCase(classifier ComplaintClassifier, logger logger.Interface) *ClassifyTextUseCase {
	return &ClassifyTextUseCase{classifier: classifier, logger: logger}
}

func (uc *ClassifyTextUseCase) Execute(_ context.Context, cmd ClassifyTextCommand) (*ClassifyTextResult, error) {
	if len([]rune(cmd.Text)) > complaint.MaxDescriptionLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("text must be at most %d characters long", complaint.MaxDescriptionLength),
		)
	}

	dept := uc.classifier.Classify(cmd.Text)
	uc.logger.Debugw("text classified", "department", dept)

	return &ClassifyTextResult{Department: dept.String()}, nil
}
