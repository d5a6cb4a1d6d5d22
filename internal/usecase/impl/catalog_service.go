package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/store"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	registry *store.Registry
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(registry *store.Registry, validate *validator.Validate, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		registry: registry,
		validate: validate,
		logger:   logger,
	}
}

// ListProducts returns the seeded products followed by the visitor's own
func (s *catalogService) ListProducts(ctx context.Context, sessionID uuid.UUID) ([]*usecase.ProductView, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	products := sess.Catalog.ListProducts()
	views := make([]*usecase.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(sess, p))
	}

	return views, nil
}

// GetProduct returns a single product with the visitor's reaction flags
func (s *catalogService) GetProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.ProductView, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	product, err := sess.Catalog.GetProduct(productID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return productView(sess, product), nil
}

// AddProduct validates the form, then appends the product once it is durably stored
func (s *catalogService) AddProduct(ctx context.Context, sessionID uuid.UUID, input *usecase.AddProductInput) (*usecase.ProductView, error) {
	cleaned := *input
	cleaned.Name = strings.TrimSpace(input.Name)
	cleaned.Description = strings.TrimSpace(input.Description)
	cleaned.Images = trimImages(input.Images)

	if err := validation.Struct(s.validate, &cleaned); err != nil {
		return nil, err
	}

	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	product, err := sess.Catalog.AddProduct(ctx, entity.ProductDraft{
		Name:        cleaned.Name,
		Price:       cleaned.Price,
		Description: cleaned.Description,
		Images:      cleaned.Images,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	deliverycontext.Logger(ctx, s.logger).Info("Product added",
		slog.String("session_id", sessionID.String()),
		slog.String("product_id", product.ID),
	)

	return productView(sess, product), nil
}

// ToggleLike flips the like flag of a catalog product
func (s *catalogService) ToggleLike(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ProductReaction, error) {
	return s.toggle(ctx, sessionID, productID, (*store.ReactionStore).ToggleLike)
}

// ToggleFavorite flips the favorite flag of a catalog product
func (s *catalogService) ToggleFavorite(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ProductReaction, error) {
	return s.toggle(ctx, sessionID, productID, (*store.ReactionStore).ToggleFavorite)
}

func (s *catalogService) toggle(
	ctx context.Context,
	sessionID uuid.UUID,
	productID string,
	flip func(*store.ReactionStore, context.Context, string) (bool, error),
) (*entity.ProductReaction, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	if !sess.Catalog.HasProduct(productID) {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, productID)
	}

	if _, err := flip(sess.Reactions, ctx, productID); err != nil {
		return nil, mapStoreError(err)
	}

	reaction := sess.Reactions.Reaction(productID)

	return &reaction, nil
}

// ListFavorites returns the favorited products in catalog order
func (s *catalogService) ListFavorites(ctx context.Context, sessionID uuid.UUID) ([]*usecase.ProductView, error) {
	sess := s.registry.Get(ctx, sessionID)
	sess.Lock()
	defer sess.Unlock()

	views := make([]*usecase.ProductView, 0)
	for _, p := range sess.Catalog.ListProducts() {
		if sess.Reactions.IsFavorited(p.ID) {
			views = append(views, productView(sess, p))
		}
	}

	return views, nil
}

// productView decorates a product with the session's reaction flags. The caller holds the session lock.
func productView(sess *store.Session, p entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		Product:      p,
		PrimaryImage: p.PrimaryImage(),
		UserAdded:    p.IsUserAdded(),
		Liked:        sess.Reactions.IsLiked(p.ID),
		Favorited:    sess.Reactions.IsFavorited(p.ID),
	}
}

// trimImages drops blank entries and surrounding whitespace.
func trimImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if trimmed := strings.TrimSpace(img); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
