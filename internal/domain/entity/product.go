// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// FallbackImage is shown wherever a product has no images of its own.
const FallbackImage = "/assets/generated/product-placeholder.dim_256x256.png"

// Product is an immutable catalog entry, either seeded or added by a visitor.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Images      []string        `json:"images"` // Ordered, possibly empty.
}

// PrimaryImage returns the first image or the fallback when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return FallbackImage
	}

	return p.Images[0]
}

// DisplayImages returns the images to render, substituting the fallback for an empty list.
func (p *Product) DisplayImages() []string {
	if len(p.Images) == 0 {
		return []string{FallbackImage}
	}

	return slices.Clone(p.Images)
}

// IsUserAdded reports whether the product was created through the add-product flow.
func (p *Product) IsUserAdded() bool {
	return strings.HasPrefix(p.ID, UserProductIDPrefix)
}

// UserProductIDPrefix marks ids generated for visitor-added products.
const UserProductIDPrefix = "user-"

// ProductDraft carries the fields of a product that has not been assigned an id yet.
type ProductDraft struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Images      []string
}
