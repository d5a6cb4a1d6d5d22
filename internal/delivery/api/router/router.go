// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	ViewHandler       *handler.ViewHandler
	ShareHandler      *handler.ShareHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	viewHandler       *handler.ViewHandler
	shareHandler      *handler.ShareHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		viewHandler:       params.ViewHandler,
		shareHandler:      params.ShareHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Session creation is the only public API route
	apiV1.POST("/sessions", r.sessionHandler.StartSession)

	// Everything else acts on the caller's session
	sessionGroup := apiV1.Group("")
	sessionGroup.Use(r.sessionMiddleware.Authenticate)

	// Catalog and reaction routes
	productsGroup := sessionGroup.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.POST("", r.catalogHandler.AddProduct)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.POST("/:id/like", r.catalogHandler.ToggleLike)
		productsGroup.POST("/:id/favorite", r.catalogHandler.ToggleFavorite)
		productsGroup.GET("/:id/share", r.shareHandler.ShareProduct)
		productsGroup.GET("/:id/qr", r.shareHandler.ProductQRCode)
	}
	sessionGroup.GET("/favorites", r.catalogHandler.ListFavorites)

	// Cart routes
	cartGroup := sessionGroup.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.POST("/items/:id/increment", r.cartHandler.IncrementQuantity)
		cartGroup.POST("/items/:id/decrement", r.cartHandler.DecrementQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveFromCart)
	}

	// Checkout and order history routes
	sessionGroup.POST("/checkout", r.checkoutHandler.SubmitOrder)
	sessionGroup.GET("/orders", r.checkoutHandler.GetOrderHistory)

	// View router and preference routes
	sessionGroup.GET("/view", r.viewHandler.GetView)
	sessionGroup.POST("/view", r.viewHandler.Navigate)
	sessionGroup.GET("/preferences/hero", r.viewHandler.GetHeroVariant)
	sessionGroup.PUT("/preferences/hero", r.viewHandler.SetHeroVariant)
}
