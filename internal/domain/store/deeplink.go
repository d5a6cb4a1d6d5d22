package store

import (
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
)

// ProductIDParam is the query parameter that carries the viewed product id.
const ProductIDParam = "productId"

// ProductIDFromLink extracts the product id from a storefront link. Unparseable links yield "".
func ProductIDFromLink(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(u.Query().Get(ProductIDParam))
}

// DeepLink returns baseURL with the product id parameter set for the details view and removed otherwise.
func DeepLink(baseURL string, state entity.ViewState) string {
	if state.View == entity.ViewDetails {
		return ProductLink(baseURL, state.SelectedProductID)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Del(ProductIDParam)
	u.RawQuery = q.Encode()

	return u.String()
}

// ProductLink returns baseURL pointing at productID's detail view.
func ProductLink(baseURL, productID string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set(ProductIDParam, productID)
	u.RawQuery = q.Encode()

	return u.String()
}
