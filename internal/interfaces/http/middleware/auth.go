package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civicpulse/internal/domain/user"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/utils"
)

const (
	ContextKeyWorkID  = "work_id"
	ContextKeyIsAdmin = "is_admin"
)

// TokenVerifier resolves a bearer token to the session it was issued for.
type TokenVerifier interface {
	Verify(token string) (*user.Session, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAdmin rejects requests without a valid admin session token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		session, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !session.User.IsAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Set(ContextKeyWorkID, session.User.WorkID)
		c.Set(ContextKeyIsAdmin, true)

		c.Next()
	}
}
