package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the claims carried by a visitor session token.
type SessionClaims struct {
	SessionID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and validates visitor session tokens.
type TokenService interface {
	// IssueSessionToken signs a token for the given session.
	IssueSessionToken(sessionID uuid.UUID) (string, error)

	// ValidateToken parses a token and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
