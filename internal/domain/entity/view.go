package entity

// View names one of the storefront screens. Exactly one is active per session.
type View string

const (
	ViewList              View = "list"
	ViewDetails           View = "details"
	ViewCart              View = "cart"
	ViewCheckout          View = "checkout"
	ViewOrderConfirmation View = "orderConfirmation"
	ViewOrderHistory      View = "orderHistory"
	ViewFavorites         View = "favorites"
)

// ViewState is the active view plus the context needed to render it.
type ViewState struct {
	View              View   `json:"view"`
	SelectedProductID string `json:"selected_product_id,omitempty"`
	Confirmation      *Order `json:"confirmation,omitempty"`
}

// NavigationAction names an explicit router transition.
type NavigationAction string

const (
	ActionNavigateToCart         NavigationAction = "navigateToCart"
	ActionViewDetails            NavigationAction = "viewDetails"
	ActionBackToList             NavigationAction = "backToList"
	ActionProceedToCheckout      NavigationAction = "proceedToCheckout"
	ActionBackToCart             NavigationAction = "backToCart"
	ActionNavigateToOrderHistory NavigationAction = "navigateToOrderHistory"
	ActionNavigateToFavorites    NavigationAction = "navigateToFavorites"
)
