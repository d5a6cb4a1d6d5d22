package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	registry     *store.Registry
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	registry := newTestRegistry(t, newMemoryKV(t))
	tokenService := mockSvc.NewMockTokenService(t)

	return sessionServiceFixtures{
		service:      NewSessionService(registry, tokenService, newTestConfig(), newDiscardLogger()),
		registry:     registry,
		tokenService: tokenService,
	}
}

func TestSessionService_StartSession(t *testing.T) {
	tests := []struct {
		name         string
		input        usecase.StartSessionInput
		wantView     entity.View
		wantSelected string
		wantLink     string
	}{
		{
			name:     "no deep link",
			input:    usecase.StartSessionInput{},
			wantView: entity.ViewList,
			wantLink: testBaseURL,
		},
		{
			name:         "product id",
			input:        usecase.StartSessionInput{ProductID: "3"},
			wantView:     entity.ViewDetails,
			wantSelected: "3",
			wantLink:     testBaseURL + "?productId=3",
		},
		{
			name:         "full link",
			input:        usecase.StartSessionInput{Link: "https://shop.example.com/?productId=5&utm=x"},
			wantView:     entity.ViewDetails,
			wantSelected: "5",
			wantLink:     testBaseURL + "?productId=5",
		},
		{
			name:     "unknown product falls back to list",
			input:    usecase.StartSessionInput{ProductID: "does-not-exist"},
			wantView: entity.ViewList,
			wantLink: testBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			fx.tokenService.EXPECT().
				IssueSessionToken(mock.AnythingOfType("uuid.UUID")).
				Return("signed-token", nil)

			result, err := fx.service.StartSession(context.Background(), &tt.input)
			require.NoError(t, err)
			assert.Equal(t, "signed-token", result.Token)
			assert.NotEqual(t, uuid.Nil, result.SessionID)
			assert.Equal(t, tt.wantView, result.View.View)
			assert.Equal(t, tt.wantSelected, result.View.SelectedProductID)
			assert.Equal(t, tt.wantLink, result.View.DeepLink)
			assert.Equal(t, 1, fx.registry.Len())
		})
	}
}

func TestSessionService_StartSession_TokenFailure(t *testing.T) {
	fx := createTestSessionService(t)
	fx.tokenService.EXPECT().
		IssueSessionToken(mock.Anything).
		Return("", errors.New("signing key missing"))

	_, err := fx.service.StartSession(context.Background(), &usecase.StartSessionInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing key missing")
}

func TestSessionService_ResolveSession(t *testing.T) {
	fx := createTestSessionService(t)
	sessionID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("good").
		Return(&service.SessionClaims{SessionID: sessionID}, nil)
	fx.tokenService.EXPECT().
		ValidateToken("bad").
		Return(nil, errors.New("token is expired"))

	got, err := fx.service.ResolveSession(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)

	_, err = fx.service.ResolveSession(context.Background(), "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}
