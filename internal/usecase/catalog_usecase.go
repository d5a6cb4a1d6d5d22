package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddProductInput is the add-product form. Images are URLs; blank entries are ignored.
type AddProductInput struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Description string          `json:"description" validate:"required"`
	Images      []string        `json:"images" validate:"min=1,dive,url"`
}

// ProductView is a product as shown to one visitor, with their reaction flags.
type ProductView struct {
	entity.Product
	PrimaryImage string `json:"primary_image"`
	UserAdded    bool   `json:"user_added"`
	Liked        bool   `json:"liked"`
	Favorited    bool   `json:"favorited"`
}

// CatalogUsecase defines the interface for catalog and reaction use cases
type CatalogUsecase interface {
	// ListProducts returns the seeded products followed by the visitor's own
	ListProducts(ctx context.Context, sessionID uuid.UUID) ([]*ProductView, error)

	// GetProduct returns a single product
	GetProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*ProductView, error)

	// AddProduct validates the input and appends a new product to the visitor's catalog
	AddProduct(ctx context.Context, sessionID uuid.UUID, input *AddProductInput) (*ProductView, error)

	// ToggleLike flips the like flag of a product
	ToggleLike(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ProductReaction, error)

	// ToggleFavorite flips the favorite flag of a product
	ToggleFavorite(ctx context.Context, sessionID uuid.UUID, productID string) (*entity.ProductReaction, error)

	// ListFavorites returns the favorited products in catalog order
	ListFavorites(ctx context.Context, sessionID uuid.UUID) ([]*ProductView, error)
}
