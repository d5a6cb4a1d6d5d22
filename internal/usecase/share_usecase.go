package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Client-facing outcome messages of the share action.
const (
	ShareSuccessMessage = "Link copied to clipboard"
	ShareFailureMessage = "Failed to share product"
)

// ShareLink is what the client hands to the native share dialog or copies to the clipboard.
type ShareLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ShareUsecase defines the interface for product sharing
type ShareUsecase interface {
	// ShareProduct returns the deep link and share text for a product
	ShareProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*ShareLink, error)

	// ProductQRCode renders the product deep link as a PNG QR code
	ProductQRCode(ctx context.Context, sessionID uuid.UUID, productID string) ([]byte, error)
}
