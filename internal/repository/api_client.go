package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"release-auction/internal/biddingerrors"
	model "release-auction/internal/models"
	"release-auction/utils"
)

const (
	DefaultBaseURL        = "http://localhost:3001/api"
	DefaultRequestTimeout = 10 * time.Second
)

// ClientConfig configures APIClient
type ClientConfig struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// APIClient is the HTTP implementation of AuctionAPI
type APIClient struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
}

// NewAPIClient creates a client for the API rooted at cfg.BaseURL
func NewAPIClient(cfg ClientConfig) (*APIClient, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("api client: invalid base url %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &APIClient{
		baseURL: strings.TrimRight(base, "/"),
		token:   cfg.Token,
		timeout: timeout,
		http:    httpClient,
	}, nil
}

// GetProperty handles GET /properties/{id}
func (c *APIClient) GetProperty(ctx context.Context, propertyID model.ID) (model.Property, error) {
	var p model.Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(propertyID.String()), nil, &p); err != nil {
		return model.Property{}, fmt.Errorf("get property %s: %w", propertyID, notFound(err, biddingerrors.ErrPropertyNotFound))
	}
	return p, nil
}

// GetBidsByProperty handles GET /properties/{id}/bids
func (c *APIClient) GetBidsByProperty(ctx context.Context, propertyID model.ID) ([]model.Bid, error) {
	var bids []model.Bid
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(propertyID.String())+"/bids", nil, &bids); err != nil {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, notFound(err, biddingerrors.ErrPropertyNotFound))
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	return bids, nil
}

// CreateBid handles POST /bids/properties/{id}/bids
func (c *APIClient) CreateBid(ctx context.Context, propertyID model.ID, req model.CreateBidRequest) (model.Bid, error) {
	var bid model.Bid
	if err := c.do(ctx, http.MethodPost, "/bids/properties/"+url.PathEscape(propertyID.String())+"/bids", req, &bid); err != nil {
		return model.Bid{}, fmt.Errorf("create bid on property %s: %w", propertyID, notFound(err, biddingerrors.ErrPropertyNotFound))
	}
	return bid, nil
}

// GetBidsByUser handles GET /users/{id}/bids
func (c *APIClient) GetBidsByUser(ctx context.Context, userID model.ID) (model.UserBids, error) {
	var bids model.UserBids
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID.String())+"/bids", nil, &bids); err != nil {
		return model.UserBids{}, fmt.Errorf("get bids for user %s: %w", userID, notFound(err, biddingerrors.ErrUserNotFound))
	}
	return bids, nil
}

// do sends one request bounded by the client timeout and decodes the JSON
// answer into out. Non-2xx answers become *biddingerrors.APIError.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s %s after %s: %w", method, path, c.timeout, biddingerrors.ErrRequestTimeout)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	utils.Debug("api request", map[string]any{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("decode %s %s response after %s: %w", method, path, c.timeout, biddingerrors.ErrRequestTimeout)
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &biddingerrors.APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}

// notFound tags a 404 APIError with the given sentinel
func notFound(err error, sentinel error) error {
	var apiErr *biddingerrors.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
