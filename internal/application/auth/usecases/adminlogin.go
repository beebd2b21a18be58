package usecases

import (
	"context"
	"time"

	"civicpulse/internal/domain/user"
	"civicpulse/internal/shared/biztime"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

// SecretVerifier checks a plain secret against a stored hash.
type SecretVerifier interface {
	Verify(secret, hash string) error
}

// SessionSigner turns a session into a bearer token.
type SessionSigner interface {
	Sign(session *user.Session) (string, error)
}

type AdminLoginCommand struct {
	WorkID string `json:"work_id" binding:"required"`
}

type AdminLoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	WorkID    string    `json:"work_id"`
	IsAdmin   bool      `json:"is_admin"`
}

type AdminLoginUseCase struct {
	verifier   SecretVerifier
	signer     SessionSigner
	workIDHash string
	sessionTTL time.Duration
	clock      biztime.Clock
	logger     logger.Interface
}

// NewAdminLoginUseCase accepts the bcrypt hash of the configured admin work
// ID; the plain value is never retained.
func NewAdminLoginUseCase(
	verifier SecretVerifier,
	signer SessionSigner,
	workIDHash string,
	sessionTTL time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *AdminLoginUseCase {
	return &AdminLoginUseCase{
		verifier:   verifier,
		signer:     signer,
		workIDHash: workIDHash,
		sessionTTL: sessionTTL,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *AdminLoginUseCase) Execute(ctx context.Context, cmd AdminLoginCommand) (*AdminLoginResult, error) {
	if cmd.WorkID == "" {
		return nil, errors.NewValidationError("work ID is required")
	}

	if err := uc.verifier.Verify(cmd.WorkID, uc.workIDHash); err != nil {
		uc.logger.Warnw("admin login rejected")
		return nil, errors.NewUnauthorizedError("invalid work ID")
	}

	session, err := user.NewAdminSession(cmd.WorkID, uc.clock.Now(), uc.sessionTTL)
	if err != nil {
		uc.logger.Errorw("failed to create admin session", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	token, err := uc.signer.Sign(session)
	if err != nil {
		uc.logger.Errorw("failed to sign admin session", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("admin logged in", "work_id", session.User.WorkID, "expires_at", session.ExpiresAt)

	return &AdminLoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		WorkID:    session.User.WorkID,
		IsAdmin:   session.User.IsAdmin,
	}, nil
}
