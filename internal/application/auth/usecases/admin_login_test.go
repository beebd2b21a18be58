package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain/user"
	"civicpulse/internal/infrastructure/auth"
	"civicpulse/internal/shared/biztime"
	apperrors "civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

type mockSigner struct {
	SignFunc func(session *user.Session) (string, error)
}

func (m *mockSigner) Sign(session *user.Session) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(session)
	}
	return "signed-token", nil
}

var loginNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newAdminLogin(t *testing.T, signer SessionSigner) *AdminLoginUseCase {
	t.Helper()

	hasher := auth.NewBcryptHasher(4)
	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)

	return NewAdminLoginUseCase(hasher, signer, hash, 8*time.Hour, biztime.FixedClock{T: loginNow}, logger.NewNopLogger())
}

func TestAdminLoginUseCase_Success(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret")
	uc := newAdminLogin(t, jwtSvc)
	uc.clock = biztime.SystemClock()

	result, err := uc.Execute(context.Background(), AdminLoginCommand{WorkID: "admin123"})
	require.NoError(t, err)
	assert.True(t, result.IsAdmin)
	assert.Equal(t, "admin123", result.WorkID)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), result.ExpiresAt, time.Minute)

	session, err := jwtSvc.Verify(result.Token)
	require.NoError(t, err)
	assert.True(t, session.User.IsAdmin)
	assert.Equal(t, "admin123", session.User.WorkID)
}

func TestAdminLoginUseCase_WrongWorkID(t *testing.T) {
	signCalled := false
	uc := newAdminLogin(t, &mockSigner{
		SignFunc: func(session *user.Session) (string, error) {
			signCalled = true
			return "", nil
		},
	})

	_, err := uc.Execute(context.Background(), AdminLoginCommand{WorkID: "guest"})
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.False(t, signCalled)
}

func TestAdminLoginUseCase_EmptyWorkID(t *testing.T) {
	uc := newAdminLogin(t, &mockSigner{})

	_, err := uc.Execute(context.Background(), AdminLoginCommand{})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAdminLoginUseCase_SignFailure(t *testing.T) {
	uc := newAdminLogin(t, &mockSigner{
		SignFunc: func(session *user.Session) (string, error) {
			return "", errors.New("no key")
		},
	})

	_, err := uc.Execute(context.Background(), AdminLoginCommand{WorkID: "admin123"})
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}

func TestAdminLoginUseCase_SessionCarriesIdentity(t *testing.T) {
	var signed *user.Session
	uc := newAdminLogin(t, &mockSigner{
		SignFunc: func(session *user.Session) (string, error) {
			signed = session
			return "tok", nil
		},
	})

	result, err := uc.Execute(context.Background(), AdminLoginCommand{WorkID: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	require.NotNil(t, signed)
	assert.True(t, signed.User.IsAdmin)
	assert.Equal(t, "admin123", signed.User.WorkID)
	assert.True(t, loginNow.Equal(signed.IssuedAt))
}
