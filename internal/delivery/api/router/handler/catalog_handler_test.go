package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUC.MockCatalogUsecase) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	return h, catalogUC
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	h, catalogUC := createTestCatalogHandler(t)
	sessionID := uuid.New()

	catalogUC.EXPECT().ListProducts(mock.Anything, sessionID).Return([]*usecase.ProductView{
		{Product: entity.Product{ID: "1", Name: "Ball", Price: decimal.RequireFromString("29.99")}, Liked: true},
	}, nil)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/products", "", sessionID)
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0]["id"])
	assert.Equal(t, true, products[0]["liked"])
}

func TestCatalogHandler_RequiresSession(t *testing.T) {
	h, _ := createTestCatalogHandler(t)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/products", "", uuid.Nil)
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	h, catalogUC := createTestCatalogHandler(t)
	sessionID := uuid.New()

	catalogUC.EXPECT().GetProduct(mock.Anything, sessionID, "missing").Return(nil, domainerrors.ErrProductNotFound)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/products/missing", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_AddProduct(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(catalogUC *mockUC.MockCatalogUsecase, sessionID uuid.UUID)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "created",
			body: `{"name":"Racket","price":"89.50","description":"Carbon frame","images":["https://img.example.com/r.png"]}`,
			setupMock: func(catalogUC *mockUC.MockCatalogUsecase, sessionID uuid.UUID) {
				catalogUC.EXPECT().AddProduct(mock.Anything, sessionID, mock.MatchedBy(func(in *usecase.AddProductInput) bool {
					return in.Name == "Racket" && in.Price.Equal(decimal.RequireFromString("89.50")) && len(in.Images) == 1
				})).Return(&usecase.ProductView{Product: entity.Product{ID: "p-1", Name: "Racket"}, UserAdded: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "validation failure carries field details",
			body: `{"name":"R","price":0,"description":"","images":[]}`,
			setupMock: func(catalogUC *mockUC.MockCatalogUsecase, sessionID uuid.UUID) {
				catalogUC.EXPECT().AddProduct(mock.Anything, sessionID, mock.Anything).Return(nil,
					domainerrors.NewValidationError(map[string]string{"name": "must be at least 2 characters"}))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name:           "malformed body",
			body:           `{"name":`,
			setupMock:      func(*mockUC.MockCatalogUsecase, uuid.UUID) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, catalogUC := createTestCatalogHandler(t)
			sessionID := uuid.New()
			tt.setupMock(catalogUC, sessionID)

			c, rec := newSessionContext(http.MethodPost, "/api/v1/products", tt.body, sessionID)
			require.NoError(t, h.AddProduct(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				env := decodeEnvelope(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectedCode, env.Error.Code)
				if tt.expectedCode == "VALIDATION_FAILED" {
					assert.Equal(t, "must be at least 2 characters", env.Error.Details["name"])
				}
			}
		})
	}
}

func TestCatalogHandler_ToggleReactions(t *testing.T) {
	h, catalogUC := createTestCatalogHandler(t)
	sessionID := uuid.New()

	catalogUC.EXPECT().ToggleLike(mock.Anything, sessionID, "2").
		Return(&entity.ProductReaction{ProductID: "2", Liked: true}, nil)
	catalogUC.EXPECT().ToggleFavorite(mock.Anything, sessionID, "2").
		Return(&entity.ProductReaction{ProductID: "2", Liked: true, Favorited: true}, nil)

	c, rec := newSessionContext(http.MethodPost, "/api/v1/products/2/like", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.ToggleLike(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"liked":true`)

	c, rec = newSessionContext(http.MethodPost, "/api/v1/products/2/favorite", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.ToggleFavorite(c))
	assert.Contains(t, rec.Body.String(), `"favorited":true`)
}

func TestCatalogHandler_ListFavorites_Empty(t *testing.T) {
	h, catalogUC := createTestCatalogHandler(t)
	sessionID := uuid.New()

	catalogUC.EXPECT().ListFavorites(mock.Anything, sessionID).Return([]*usecase.ProductView{}, nil)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/favorites", "", sessionID)
	require.NoError(t, h.ListFavorites(c))
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
