package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"civicpulse/internal/domain/user"
)

// Claims carries the session identity.
type Claims struct {
	IsAdmin bool   `json:"isAdmin"`
	WorkID  string `json:"workId,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies admin session tokens with HS256.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) Sign(session *user.Session) (string, error) {
	claims := &Claims{
		IsAdmin: session.User.IsAdmin,
		WorkID:  session.User.WorkID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.User.WorkID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			NotBefore: jwt.NewNumericDate(session.IssuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns the session it carries.
func (s *JWTService) Verify(tokenString string) (*user.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	session := &user.Session{
		User: user.User{IsAdmin: claims.IsAdmin, WorkID: claims.WorkID},
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
