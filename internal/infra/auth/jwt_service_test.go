package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront"
	cfg.Session.Secret = secret
	cfg.Session.TTL = time.Hour

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	sessionID := uuid.New()
	token, err := svc.IssueSessionToken(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one-secret-one-secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two-secret-two-secret-two"))
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.IssueSessionToken(uuid.New())
	require.NoError(t, err)
	impl.now = time.Now

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	secret := "test_session_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	claims := sessionTokenClaims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "unexpected token type")
}
