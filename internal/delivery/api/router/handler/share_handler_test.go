package handler

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareHandler_ShareProduct(t *testing.T) {
	shareUC := mockUC.NewMockShareUsecase(t)
	h := NewShareHandler(ShareHandlerParams{ShareUC: shareUC, Logger: newDiscardLogger()})
	sessionID := uuid.New()

	shareUC.EXPECT().ShareProduct(mock.Anything, sessionID, "1").Return(&usecase.ShareLink{
		URL:   "https://shop.example.com/?productId=1",
		Title: "Ball",
		Text:  "Check out Ball - $29.99",
	}, nil)

	c, rec := newSessionContext(http.MethodGet, "/api/v1/products/1/share", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.ShareProduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"url":"https://shop.example.com/?productId=1"`)
	assert.Contains(t, body, `"copied_message":"Link copied to clipboard"`)
	assert.Contains(t, body, `"failed_message":"Failed to share product"`)
}

func TestShareHandler_ProductQRCode(t *testing.T) {
	shareUC := mockUC.NewMockShareUsecase(t)
	h := NewShareHandler(ShareHandlerParams{ShareUC: shareUC, Logger: newDiscardLogger()})
	sessionID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	shareUC.EXPECT().ProductQRCode(mock.Anything, sessionID, "1").Return(png, nil).Once()
	shareUC.EXPECT().ProductQRCode(mock.Anything, sessionID, "2").
		Return(nil, errors.Wrap(domainerrors.ErrShareFailed, "encoder failed")).Once()

	c, rec := newSessionContext(http.MethodGet, "/api/v1/products/1/qr", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.ProductQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())

	c, rec = newSessionContext(http.MethodGet, "/api/v1/products/2/qr", "", sessionID)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.ProductQRCode(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHARE_FAILED")
}
