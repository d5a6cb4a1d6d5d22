package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shareServiceFixtures holds all test dependencies for share service tests.
type shareServiceFixtures struct {
	service   usecase.ShareUsecase
	qrService *mockSvc.MockQRCodeService
	sessionID uuid.UUID
}

func createTestShareService(t *testing.T) shareServiceFixtures {
	registry := newTestRegistry(t, newMemoryKV(t))
	qrService := mockSvc.NewMockQRCodeService(t)

	return shareServiceFixtures{
		service:   NewShareService(registry, qrService, newTestConfig(), newDiscardLogger()),
		qrService: qrService,
		sessionID: newTestSession(t, registry),
	}
}

func TestShareService_ShareProduct(t *testing.T) {
	fx := createTestShareService(t)

	link, err := fx.service.ShareProduct(context.Background(), fx.sessionID, "1")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"?productId=1", link.URL)
	assert.Equal(t, "Cricket Bat", link.Title)
	assert.Equal(t, "Check out Cricket Bat - $89.99", link.Text)
}

func TestShareService_ShareProduct_NotFound(t *testing.T) {
	fx := createTestShareService(t)

	_, err := fx.service.ShareProduct(context.Background(), fx.sessionID, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestShareService_ProductQRCode(t *testing.T) {
	fx := createTestShareService(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.qrService.EXPECT().GenerateLinkQR(testBaseURL+"?productId=2").Return(png, nil)

	got, err := fx.service.ProductQRCode(context.Background(), fx.sessionID, "2")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestShareService_ProductQRCode_Failure(t *testing.T) {
	fx := createTestShareService(t)

	fx.qrService.EXPECT().GenerateLinkQR(testBaseURL+"?productId=2").Return(nil, errors.New("data too long"))

	_, err := fx.service.ProductQRCode(context.Background(), fx.sessionID, "2")
	assert.True(t, errors.Is(err, domainerrors.ErrShareFailed))
}
