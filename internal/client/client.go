// Package client is a typed HTTP client for the portfolio API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

// ErrUnauthorized means the server rejected the access token. Callers should
// send the user back to login.
var ErrUnauthorized = errors.New("session expired or missing")

// APIError is any non-success answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetTimeout(90 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// SetToken sets the bearer token used on admin calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do runs the request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(req *resty.Request, method, path string, out interface{}) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		var body models.ErrorResponse
		msg := resp.String()
		if json.Unmarshal(resp.Body(), &body) == nil && body.Error != "" {
			msg = body.Error
			if body.Message != "" {
				msg += ": " + body.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response: %w, body: %s", err, resp.String())
	}
	return nil
}

// GenerateReview calls the generation gateway. Nothing is persisted.
func (c *Client) GenerateReview(ctx context.Context, fields review.Fields) (string, error) {
	var out models.GenerateReviewResponse
	if err := c.do(c.request(ctx).SetBody(fields), http.MethodPost, "/functions/v1/generate-review", &out); err != nil {
		return "", err
	}
	return out.Review, nil
}

func (c *Client) DraftReview(ctx context.Context, req models.DraftReviewRequest) (*models.DraftReviewResponse, error) {
	var out models.DraftReviewResponse
	if err := c.do(c.request(ctx).SetBody(req), http.MethodPost, "/api/v1/reviews/generate", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublishReview(ctx context.Context, req models.PublishReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(c.request(ctx).SetBody(req), http.MethodPost, "/api/v1/reviews", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Testimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	req := c.request(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	var out models.TestimonialsResponse
	if err := c.do(req, http.MethodGet, "/api/v1/testimonials", &out); err != nil {
		return nil, err
	}
	return out.Testimonials, nil
}

// Login signs in and keeps the access token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.SessionResponse, error) {
	var out models.SessionResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(c.request(ctx).SetBody(body), http.MethodPost, "/api/v1/auth/login", &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.SessionResponse, error) {
	var out models.SessionResponse
	body := models.RefreshRequest{RefreshToken: refreshToken}
	if err := c.do(c.request(ctx).SetBody(body), http.MethodPost, "/api/v1/auth/refresh", &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(c.request(ctx), http.MethodPost, "/api/v1/auth/logout", nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) Session(ctx context.Context) (*models.SessionInfoResponse, error) {
	var out models.SessionInfoResponse
	if err := c.do(c.request(ctx), http.MethodGet, "/api/v1/auth/session", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	var out models.DashboardResponse
	if err := c.do(c.request(ctx), http.MethodGet, "/api/v1/admin/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error) {
	var out models.Order
	body := models.UpdateOrderStatusRequest{Status: status, Version: version}
	path := "/api/v1/admin/orders/" + orderID.String() + "/status"
	if err := c.do(c.request(ctx).SetBody(body), http.MethodPatch, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, notes string, version *int64) (*models.Order, error) {
	var out models.Order
	body := models.UpdateOrderNotesRequest{Notes: notes, Version: version}
	path := "/api/v1/admin/orders/" + orderID.String() + "/notes"
	if err := c.do(c.request(ctx).SetBody(body), http.MethodPatch, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return c.do(c.request(ctx), http.MethodDelete, "/api/v1/admin/orders/"+orderID.String(), nil)
}

func (c *Client) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	return c.do(c.request(ctx), http.MethodDelete, "/api/v1/admin/reviews/"+reviewID.String(), nil)
}

func (c *Client) ModerateReview(ctx context.Context, reviewID uuid.UUID, status string) (*models.Review, error) {
	var out models.Review
	body := models.ModerateReviewRequest{Status: status}
	path := "/api/v1/admin/reviews/" + reviewID.String() + "/moderation"
	if err := c.do(c.request(ctx).SetBody(body), http.MethodPatch, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
