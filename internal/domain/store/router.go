package store

import "storefront/internal/domain/entity"

// CartClearer empties a cart.
type CartClearer interface {
	ClearCart()
}

// ProductResolver reports whether a product id exists.
type ProductResolver interface {
	HasProduct(productID string) bool
}

// Router is the view state machine of a session. It starts in the list view.
type Router struct {
	state   entity.ViewState
	cart    CartClearer
	catalog ProductResolver
}

// NewRouter returns a router in the list view.
func NewRouter(cart CartClearer, catalog ProductResolver) *Router {
	return &Router{
		state:   entity.ViewState{View: entity.ViewList},
		cart:    cart,
		catalog: catalog,
	}
}

// State returns the active view and its context.
func (r *Router) State() entity.ViewState {
	return r.state
}

// InitFromDeepLink selects the details view when productID resolves, else the list view.
func (r *Router) InitFromDeepLink(productID string) {
	if productID != "" && r.catalog.HasProduct(productID) {
		r.state = entity.ViewState{View: entity.ViewDetails, SelectedProductID: productID}

		return
	}

	r.state = entity.ViewState{View: entity.ViewList}
}

func (r *Router) goTo(view entity.View) {
	r.state = entity.ViewState{View: view}
}

// NavigateToCart shows the cart.
func (r *Router) NavigateToCart() { r.goTo(entity.ViewCart) }

// BackToList returns to the product list.
func (r *Router) BackToList() { r.goTo(entity.ViewList) }

// ProceedToCheckout shows the checkout form.
func (r *Router) ProceedToCheckout() { r.goTo(entity.ViewCheckout) }

// BackToCart leaves checkout for the cart.
func (r *Router) BackToCart() { r.goTo(entity.ViewCart) }

// NavigateToOrderHistory shows past orders.
func (r *Router) NavigateToOrderHistory() { r.goTo(entity.ViewOrderHistory) }

// NavigateToFavorites shows favorited products.
func (r *Router) NavigateToFavorites() { r.goTo(entity.ViewFavorites) }

// ViewDetails shows a product's details. Unknown ids leave the state unchanged.
func (r *Router) ViewDetails(productID string) error {
	if !r.catalog.HasProduct(productID) {
		return ErrProductNotFound
	}
	r.state = entity.ViewState{View: entity.ViewDetails, SelectedProductID: productID}

	return nil
}

// OrderSucceeded moves from checkout to the order confirmation and clears the cart.
func (r *Router) OrderSucceeded(order *entity.Order) error {
	if r.state.View != entity.ViewCheckout {
		return ErrInvalidTransition
	}

	r.cart.ClearCart()
	r.state = entity.ViewState{View: entity.ViewOrderConfirmation, Confirmation: order}

	return nil
}

// Dispatch applies a named navigation action.
func (r *Router) Dispatch(action entity.NavigationAction, productID string) error {
	switch action {
	case entity.ActionNavigateToCart:
		r.NavigateToCart()
	case entity.ActionViewDetails:
		return r.ViewDetails(productID)
	case entity.ActionBackToList:
		r.BackToList()
	case entity.ActionProceedToCheckout:
		r.ProceedToCheckout()
	case entity.ActionBackToCart:
		r.BackToCart()
	case entity.ActionNavigateToOrderHistory:
		r.NavigateToOrderHistory()
	case entity.ActionNavigateToFavorites:
		r.NavigateToFavorites()
	default:
		return ErrUnknownAction
	}

	return nil
}
