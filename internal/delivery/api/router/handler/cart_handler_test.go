package handler

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()}), cartUC
}

func TestCartHandler_AddToCart(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(cartUC *mockUC.MockCartUsecase, sessionID uuid.UUID)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "adds product",
			body: `{"product_id":"3"}`,
			setupMock: func(cartUC *mockUC.MockCartUsecase, sessionID uuid.UUID) {
				cartUC.EXPECT().AddToCart(mock.Anything, sessionID, "3").Return(&usecase.CartSummary{
					Items:    []usecase.CartLine{{ProductID: "3", Quantity: 1, Price: decimal.NewFromInt(10), LineTotal: decimal.NewFromInt(10)}},
					Count:    1,
					Subtotal: decimal.NewFromInt(10),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing product id",
			body:           `{}`,
			setupMock:      func(*mockUC.MockCartUsecase, uuid.UUID) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name: "unknown product",
			body: `{"product_id":"nope"}`,
			setupMock: func(cartUC *mockUC.MockCartUsecase, sessionID uuid.UUID) {
				cartUC.EXPECT().AddToCart(mock.Anything, sessionID, "nope").Return(nil, domainerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name: "storage failure",
			body: `{"product_id":"3"}`,
			setupMock: func(cartUC *mockUC.MockCartUsecase, sessionID uuid.UUID) {
				cartUC.EXPECT().AddToCart(mock.Anything, sessionID, "3").
					Return(nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "bucket offline"))
			},
			expectedStatus: http.StatusInsufficientStorage,
			expectedCode:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cartUC := createTestCartHandler(t)
			sessionID := uuid.New()
			tt.setupMock(cartUC, sessionID)

			c, rec := newSessionContext(http.MethodPost, "/api/v1/cart/items", tt.body, sessionID)
			require.NoError(t, h.AddToCart(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			env := decodeEnvelope(t, rec)
			if tt.expectedCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectedCode, env.Error.Code)
			} else {
				assert.Contains(t, string(env.Data), `"count":1`)
				assert.Contains(t, string(env.Data), `"subtotal":"10"`)
			}
		})
	}
}

func TestCartHandler_LineUpdates(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	sessionID := uuid.New()
	empty := &usecase.CartSummary{Items: []usecase.CartLine{}, Subtotal: decimal.Zero}

	cartUC.EXPECT().IncrementQuantity(mock.Anything, sessionID, "1").Return(empty, nil).Once()
	cartUC.EXPECT().DecrementQuantity(mock.Anything, sessionID, "1").Return(empty, nil).Once()
	cartUC.EXPECT().RemoveFromCart(mock.Anything, sessionID, "1").Return(empty, nil).Once()
	cartUC.EXPECT().ClearCart(mock.Anything, sessionID).Return(empty, nil).Once()
	cartUC.EXPECT().GetCart(mock.Anything, sessionID).Return(empty, nil).Once()

	for _, handle := range []echo.HandlerFunc{h.IncrementQuantity, h.DecrementQuantity, h.RemoveFromCart} {
		c, rec := newSessionContext(http.MethodPost, "/api/v1/cart/items/1", "", sessionID)
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, handle(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec := newSessionContext(http.MethodDelete, "/api/v1/cart", "", sessionID)
	require.NoError(t, h.ClearCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newSessionContext(http.MethodGet, "/api/v1/cart", "", sessionID)
	require.NoError(t, h.GetCart(c))
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
