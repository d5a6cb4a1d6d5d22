package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestViewHandler(t *testing.T) (*ViewHandler, *mockUC.MockNavigationUsecase, *mockUC.MockPreferenceUsecase) {
	navigationUC := mockUC.NewMockNavigationUsecase(t)
	preferenceUC := mockUC.NewMockPreferenceUsecase(t)

	return NewViewHandler(ViewHandlerParams{NavigationUC: navigationUC, PreferenceUC: preferenceUC}), navigationUC, preferenceUC
}

func TestViewHandler_Navigate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(navigationUC *mockUC.MockNavigationUsecase, sessionID uuid.UUID)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "view details",
			body: `{"action":"viewDetails","product_id":"4"}`,
			setupMock: func(navigationUC *mockUC.MockNavigationUsecase, sessionID uuid.UUID) {
				navigationUC.EXPECT().Navigate(mock.Anything, sessionID, entity.ActionViewDetails, "4").Return(&usecase.ViewResult{
					ViewState: entity.ViewState{View: entity.ViewDetails, SelectedProductID: "4"},
					DeepLink:  "https://shop.example.com/?productId=4",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deep_link":"https://shop.example.com/?productId=4"`,
		},
		{
			name:           "missing action",
			body:           `{"product_id":"4"}`,
			setupMock:      func(*mockUC.MockNavigationUsecase, uuid.UUID) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"action":"is required"`,
		},
		{
			name: "transition not allowed",
			body: `{"action":"proceedToCheckout"}`,
			setupMock: func(navigationUC *mockUC.MockNavigationUsecase, sessionID uuid.UUID) {
				navigationUC.EXPECT().Navigate(mock.Anything, sessionID, entity.ActionProceedToCheckout, "").
					Return(nil, domainerrors.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"INVALID_TRANSITION"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, navigationUC, _ := createTestViewHandler(t)
			sessionID := uuid.New()
			tt.setupMock(navigationUC, sessionID)

			c, rec := newSessionContext(http.MethodPost, "/api/v1/view", tt.body, sessionID)
			require.NoError(t, h.Navigate(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestViewHandler_GetView(t *testing.T) {
	h, navigationUC, _ := createTestViewHandler(t)
	sessionID := uuid.New()

	navigationUC.EXPECT().GetView(mock.Anything, sessionID).Return(&usecase.ViewResult{
		ViewState: entity.ViewState{View: entity.ViewList},
		DeepLink:  "https://shop.example.com/",
	}, nil)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/view", "", sessionID)
	require.NoError(t, h.GetView(c))
	assert.Contains(t, rec.Body.String(), `"view":"list"`)
}

func TestViewHandler_HeroVariant(t *testing.T) {
	h, _, preferenceUC := createTestViewHandler(t)
	sessionID := uuid.New()

	preferenceUC.EXPECT().GetHeroVariant(mock.Anything, sessionID).Return(entity.HeroOptionA, nil)
	preferenceUC.EXPECT().SetHeroVariant(mock.Anything, sessionID, entity.HeroOptionC).Return(entity.HeroOptionC, nil)
	preferenceUC.EXPECT().SetHeroVariant(mock.Anything, sessionID, entity.HeroVariant("option-z")).
		Return(entity.HeroVariant(""), domainerrors.ErrInvalidHeroVariant)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/preferences/hero", "", sessionID)
	require.NoError(t, h.GetHeroVariant(c))
	assert.Contains(t, rec.Body.String(), `"variant":"option-a"`)

	c, rec = newSessionContext(http.MethodPut, "/api/v1/preferences/hero", `{"variant":"option-c"}`, sessionID)
	require.NoError(t, h.SetHeroVariant(c))
	assert.Contains(t, rec.Body.String(), `"variant":"option-c"`)

	c, rec = newSessionContext(http.MethodPut, "/api/v1/preferences/hero", `{"variant":"option-z"}`, sessionID)
	require.NoError(t, h.SetHeroVariant(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_HERO_VARIANT")
}
