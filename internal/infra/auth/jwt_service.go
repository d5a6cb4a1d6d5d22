// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenType = "session"

// jwtService signs visitor session tokens with HMAC-SHA256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type sessionTokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		issuer: cfg.Env.ServiceName,
		now:    time.Now,
	}, nil
}

// IssueSessionToken creates a signed token whose subject is the session id.
func (s *jwtService) IssueSessionToken(sessionID uuid.UUID) (string, error) {
	now := s.now()
	claims := sessionTokenClaims{
		Type: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and token type, and returns the session claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &sessionTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token structure: %w", err)
	}

	if claims.Type != sessionTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid session id in token: %w", err)
	}

	return &service.SessionClaims{
		SessionID:        sessionID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
