package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	ordersPath       = "/orders"
	callerIDHeader   = "X-Caller-Id"
	requestIDHeader  = "X-Request-Id"
	maxErrorBodySize = 1024
)

// httpRecorder talks to a remote order service over JSON/HTTP.
type httpRecorder struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// createOrderResponse is the body returned by POST /orders.
type createOrderResponse struct {
	OrderID flexibleID `json:"orderId"`
}

// remoteOrder is one entry of the GET /orders array.
type remoteOrder struct {
	OrderID      flexibleID                  `json:"orderId"`
	Items        []service.OrderItemPayload  `json:"items"`
	Subtotal     *decimal.Decimal            `json:"subtotal,omitempty"`
	Timestamp    time.Time                   `json:"timestamp"`
	CustomerInfo service.CustomerInfoPayload `json:"customerInfo"`
}

// flexibleID accepts either a JSON string or a JSON number.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = flexibleID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("order id must be a string or number, got %s", string(data))
	}
	*id = flexibleID(n.String())

	return nil
}

// NewHTTPRecorder creates an OrderRecorder that calls {baseURL}/orders.
func NewHTTPRecorder(baseURL string, timeout time.Duration, logger *slog.Logger) service.OrderRecorder {
	return newHTTPRecorder(baseURL, &http.Client{Timeout: timeout}, logger)
}

func newHTTPRecorder(baseURL string, client *http.Client, logger *slog.Logger) *httpRecorder {
	return &httpRecorder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

// CreateOrder posts the order and returns the identifier assigned by the remote service.
func (r *httpRecorder) CreateOrder(ctx context.Context, callerID string, req *service.CreateOrderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.WithStack(err)
	}

	httpReq, err := r.newRequest(ctx, http.MethodPost, callerID, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "order service request failed")
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var out createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode create order response")
	}
	if out.OrderID == "" {
		return "", errors.New("order service returned an empty order id")
	}

	r.logger.Info("[HTTPOrders] Order recorded", slog.String("order_id", string(out.OrderID)))

	return string(out.OrderID), nil
}

// ListOrders fetches every order visible to the caller.
func (r *httpRecorder) ListOrders(ctx context.Context, callerID string) ([]*entity.Order, error) {
	httpReq, err := r.newRequest(ctx, http.MethodGet, callerID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "order service request failed")
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var remote []remoteOrder
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, errors.Wrap(err, "failed to decode order list")
	}

	orders := make([]*entity.Order, 0, len(remote))
	for _, ro := range remote {
		orders = append(orders, ro.toDomain())
	}
	// The order service does not promise an order; history is shown newest first.
	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return orders, nil
}

func (r *httpRecorder) newRequest(ctx context.Context, method, callerID string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+ordersPath, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if callerID != "" {
		req.Header.Set(callerIDHeader, callerID)
	}
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}

	return req, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return service.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return errors.Errorf("order service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	default:
		return nil
	}
}

func (o remoteOrder) toDomain() *entity.Order {
	req := service.CreateOrderRequest{CustomerInfo: o.CustomerInfo, Items: o.Items}
	order := buildOrder(string(o.OrderID), o.Timestamp, &req)
	if o.Subtotal != nil {
		order.Subtotal = *o.Subtotal
	}

	return order
}
