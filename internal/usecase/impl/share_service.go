package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shareService struct {
	registry      *store.Registry
	qrService     service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// NewShareService creates a new share service instance
func NewShareService(
	registry *store.Registry,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ShareUsecase {
	return &shareService{
		registry:      registry,
		qrService:     qrService,
		publicBaseURL: cfg.Share.PublicBaseURL,
		logger:        logger,
	}
}

// ShareProduct returns the deep link and share text for a product
func (s *shareService) ShareProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.ShareLink, error) {
	product, err := s.lookup(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	return &usecase.ShareLink{
		URL:   store.ProductLink(s.publicBaseURL, product.ID),
		Title: product.Name,
		Text:  fmt.Sprintf("Check out %s - %s", product.Name, util.FormatPrice(product.Price)),
	}, nil
}

// ProductQRCode renders the product deep link as a PNG QR code
func (s *shareService) ProductQRCode(ctx context.Context, sessionID uuid.UUID, productID string) ([]byte, error) {
	product, err := s.lookup(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateLinkQR(store.ProductLink(s.publicBaseURL, product.ID))
	if err != nil {
		deliverycontext.Logger(ctx, s.logger).Error("Failed to render share QR code",
			slog.String("product_id", product.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrShareFailed, err.Error())
	}

	return png, nil
}

func (s *shareService) lookup(ctx context.Context, sessionID uuid.UUID, productID string) (entity.Product, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	product, err := sess.Catalog.GetProduct(productID)
	if err != nil {
		return entity.Product{}, mapStoreError(err)
	}

	return product, nil
}
