package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/store"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/orders"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/validation"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// newTestServer wires the real usecases over an in-memory bucket and order recorder.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront-test"
	cfg.Session = config.SessionConfig{Secret: "test-secret", TTL: time.Hour}
	cfg.Share = config.ShareConfig{PublicBaseURL: "https://shop.example.com/"}

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	registry := store.NewRegistry(blob.NewKeyValueStore(bucket, logger), "sports-store", logger)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Maybe()

	validate := validation.New()
	sessionUC := impl.NewSessionService(registry, tokenService, cfg, logger)
	catalogUC := impl.NewCatalogService(registry, validate, logger)
	cartUC := impl.NewCartService(registry)
	checkoutUC := impl.NewCheckoutService(registry, orders.NewMemoryRecorder(logger), publisher, validate, logger)
	navigationUC := impl.NewNavigationService(registry, cfg)
	preferenceUC := impl.NewPreferenceService(registry)
	shareUC := impl.NewShareService(registry, qrcode.NewQRCodeService(128, "M"), cfg, logger)

	e := echo.New()
	e.Validator = validator.NewWithValidate(validate)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		CartHandler:       handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		CheckoutHandler:   handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: logger}),
		ViewHandler:       handler.NewViewHandler(handler.ViewHandlerParams{NavigationUC: navigationUC, PreferenceUC: preferenceUC}),
		ShareHandler:      handler.NewShareHandler(handler.ShareHandlerParams{ShareUC: shareUC, Logger: logger}),
		SessionMiddleware: apimiddleware.NewSessionMiddleware(apimiddleware.SessionMiddlewareParams{SessionUC: sessionUC, Logger: logger}),
	})
	r.RegisterRoutes(e)

	return e
}

type apiClient struct {
	t     *testing.T
	e     *echo.Echo
	token string
}

func (a *apiClient) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if a.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func startSession(t *testing.T, e *echo.Echo, query string) (*apiClient, map[string]any) {
	t.Helper()

	client := &apiClient{t: t, e: e}
	rec, env := client.do(http.MethodPost, "/api/v1/sessions"+query, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	data := env["data"].(map[string]any)
	client.token = data["token"].(string)

	return client, data
}

func TestRoutes_HealthAndAuth(t *testing.T) {
	e := newTestServer(t)
	anonymous := &apiClient{t: t, e: e}

	rec, _ := anonymous.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := anonymous.do(http.MethodGet, "/api/v1/cart", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env["error"].(map[string]any)["code"])

	anonymous.token = "not-a-jwt"
	rec, env = anonymous.do(http.MethodGet, "/api/v1/cart", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", env["error"].(map[string]any)["code"])
}

func TestRoutes_DeepLinkSession(t *testing.T) {
	e := newTestServer(t)

	_, data := startSession(t, e, "?productId=2")
	view := data["view"].(map[string]any)
	assert.Equal(t, "details", view["view"])
	assert.Equal(t, "2", view["selected_product_id"])
	assert.Equal(t, "https://shop.example.com/?productId=2", view["deep_link"])

	_, data = startSession(t, e, "?productId=does-not-exist")
	assert.Equal(t, "list", data["view"].(map[string]any)["view"])
}

func TestRoutes_CheckoutFlow(t *testing.T) {
	e := newTestServer(t)
	client, _ := startSession(t, e, "")

	rec, _ := client.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = client.do(http.MethodPost, "/api/v1/cart/items/1/increment", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := client.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart := env["data"].(map[string]any)
	assert.EqualValues(t, 2, cart["count"])

	// Checkout is only reachable through the cart view
	rec, _ = client.do(http.MethodPost, "/api/v1/checkout", `{"full_name":"Jane Doe","email":"jane@example.com","address_line":"1 Main St","city":"Springfield","postal_code":"12345"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = client.do(http.MethodPost, "/api/v1/view", `{"action":"navigateToCart"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = client.do(http.MethodPost, "/api/v1/view", `{"action":"proceedToCheckout"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = client.do(http.MethodPost, "/api/v1/checkout", `{"full_name":"Jane Doe","email":"not-an-email","address_line":"1 Main St","city":"Springfield","postal_code":"12345"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	details := env["error"].(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "must be a valid email address", details["email"])

	rec, env = client.do(http.MethodPost, "/api/v1/checkout", `{"full_name":"Jane Doe","email":"jane@example.com","address_line":"1 Main St","city":"Springfield","postal_code":"12345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := env["data"].(map[string]any)["order_id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD-"))

	rec, env = client.do(http.MethodGet, "/api/v1/view", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "orderConfirmation", env["data"].(map[string]any)["view"])

	rec, env = client.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, env["data"].(map[string]any)["count"])

	rec, env = client.do(http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := env["data"].([]any)
	require.Len(t, history, 1)
	assert.Equal(t, orderID, history[0].(map[string]any)["order_id"])
}

func TestRoutes_ReactionsAndShare(t *testing.T) {
	e := newTestServer(t)
	client, _ := startSession(t, e, "")

	rec, _ := client.do(http.MethodPost, "/api/v1/products/3/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := client.do(http.MethodGet, "/api/v1/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	favorites := env["data"].([]any)
	require.Len(t, favorites, 1)
	assert.Equal(t, "3", favorites[0].(map[string]any)["id"])

	rec, env = client.do(http.MethodGet, "/api/v1/products/3/share", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://shop.example.com/?productId=3", env["data"].(map[string]any)["url"])

	rec, _ = client.do(http.MethodGet, "/api/v1/products/3/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec, _ = client.do(http.MethodPost, "/api/v1/products/unknown/like", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_HeroPreference(t *testing.T) {
	e := newTestServer(t)
	client, _ := startSession(t, e, "")

	rec, env := client.do(http.MethodGet, "/api/v1/preferences/hero", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "option-a", env["data"].(map[string]any)["variant"])

	rec, _ = client.do(http.MethodPut, "/api/v1/preferences/hero", `{"variant":"option-b"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = client.do(http.MethodGet, "/api/v1/preferences/hero", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "option-b", env["data"].(map[string]any)["variant"])
}
