// Package gateway talks to the payment gateway orders API.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/pkg/clients"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusAttempted = "attempted"
	OrderStatusPaid      = "paid"

	PaymentStatusCaptured = "captured"
)

var ErrUnavailable = errors.New("payment gateway unavailable")

// Error is a request the gateway refused.
type Error struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway rejected request (%d %s): %s", e.StatusCode, e.Code, e.Description)
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("gateway rate limit, retry after %s", e.RetryAfter)
}

type OrderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type paymentCollection struct {
	Count int       `json:"count"`
	Items []Payment `json:"items"`
}

type errorBody struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    clients.HTTPClientI
}

func New(baseURL, keyID, keySecret string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    client,
	}
}

// KeyID is the public key handed to the checkout page.
func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	headers := c.headers()
	headers.Set("Content-Type", "application/json")

	status, respBody, respHeaders, err := c.client.Post(ctx, c.baseURL+"/v1/orders", headers, body)
	if err != nil {
		zap.L().Error("gateway create order failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := checkStatus(status, respBody, respHeaders); err != nil {
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("%w: decode order: %w", ErrUnavailable, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order without id", ErrUnavailable)
	}
	return &order, nil
}

func (c *Client) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.get(ctx, "/v1/orders/"+url.PathEscape(orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FetchOrderPayments(ctx context.Context, orderID string) ([]Payment, error) {
	var collection paymentCollection
	if err := c.get(ctx, "/v1/orders/"+url.PathEscape(orderID)+"/payments", &collection); err != nil {
		return nil, err
	}
	return collection.Items, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	status, respBody, respHeaders, err := c.client.Get(ctx, c.baseURL+path, c.headers())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := checkStatus(status, respBody, respHeaders); err != nil {
		return err
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return nil
}

func (c *Client) headers() http.Header {
	creds := base64.StdEncoding.EncodeToString([]byte(c.keyID + ":" + c.keySecret))
	h := http.Header{}
	h.Set("Authorization", "Basic "+creds)
	h.Set("Accept", "application/json")
	return h
}

func checkStatus(status int, body []byte, headers http.Header) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(headers)}
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	}

	gwErr := &Error{StatusCode: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		gwErr.Code = eb.Error.Code
		gwErr.Description = eb.Error.Description
	}
	if gwErr.Description == "" {
		gwErr.Description = http.StatusText(status)
	}
	zap.L().Warn("gateway rejected request",
		zap.Int("status", status),
		zap.String("code", gwErr.Code),
		zap.String("description", gwErr.Description),
	)
	return gwErr
}

func retryAfter(headers http.Header) time.Duration {
	if headers == nil {
		return 0
	}
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}
