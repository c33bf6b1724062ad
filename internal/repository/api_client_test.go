package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"release-auction/internal/biddingerrors"
	model "release-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg ClientConfig) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL + "/api/"
	client, err := NewAPIClient(cfg)
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAPIClient_GetProperty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/properties/42", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		// the API mixes numeric and string ids and sends null for absent dates
		_, _ = w.Write([]byte(`{
			"id": 42,
			"user_id": "7",
			"title": "Loft",
			"formatted_address": "1 Main St",
			"min_price": 1000,
			"start_date": "2026-11-01",
			"end_date": "2027-05-01T00:00:00Z",
			"auction_end_date": "2026-10-20T12:00:00.000Z",
			"images": [{"id": 1, "image_url": "https://img/1.jpg"}],
			"amenities": ["Wifi"],
			"bids": [
				{"id": 9, "amount": 1100, "start_date": "2026-11-01", "end_date": "2027-05-01",
				 "created_at": "2026-10-19 08:00:00", "bidder": {"name": "Alice", "email": "a@x"}, "status": "active"},
				{"id": "10", "amount": 1050.5, "start_date": null, "end_date": "", "bidder": null, "status": "active"}
			]
		}`))
	}, ClientConfig{})

	p, err := client.GetProperty(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, model.ID("42"), p.ID)
	require.Equal(t, 1000.0, p.MinPrice)
	require.True(t, p.HasAuction())
	require.Equal(t, time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC), p.AuctionEndDate.UTC())
	require.Len(t, p.Bids, 2)
	require.Equal(t, model.ID("9"), p.Bids[0].ID)
	require.Equal(t, "Alice", p.Bids[0].BidderName())
	require.Equal(t, model.AnonymousBidder, p.Bids[1].BidderName())
	require.True(t, p.Bids[1].StartDate.IsZero())
}

func TestAPIClient_CreateBid(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bids/properties/42/bids", r.URL.Path)
		require.Equal(t, "Bearer alice-token", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.CreateBidRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, model.CreateBidRequest{Amount: 1500, StartDate: "2026-11-01", EndDate: "2027-05-01"}, req)

		writeJSON(w, http.StatusCreated, map[string]any{"id": 77, "amount": req.Amount, "status": "active"})
	}, ClientConfig{Token: "alice-token"})

	bid, err := client.CreateBid(context.Background(), "42", model.CreateBidRequest{
		Amount: 1500, StartDate: "2026-11-01", EndDate: "2027-05-01",
	})
	require.NoError(t, err)
	require.Equal(t, model.ID("77"), bid.ID)
	require.Equal(t, model.BidStatusActive, bid.Status)
}

func TestAPIClient_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		call          func(c *APIClient) error
		expectedError error
		wantMessage   string
	}{
		{
			name:   "error_field_is_surfaced",
			status: http.StatusBadRequest,
			body:   `{"error":"Bid must be higher than the current highest bid"}`,
			call: func(c *APIClient) error {
				_, err := c.CreateBid(context.Background(), "1", validRequest)
				return err
			},
			wantMessage: "Bid must be higher than the current highest bid",
		},
		{
			name:   "property_not_found",
			status: http.StatusNotFound,
			body:   `{"error":"Property not found"}`,
			call: func(c *APIClient) error {
				_, err := c.GetProperty(context.Background(), "1")
				return err
			},
			expectedError: biddingerrors.ErrPropertyNotFound,
			wantMessage:   "Property not found",
		},
		{
			name:   "user_not_found",
			status: http.StatusNotFound,
			body:   `not json`,
			call: func(c *APIClient) error {
				_, err := c.GetBidsByUser(context.Background(), "1")
				return err
			},
			expectedError: biddingerrors.ErrUserNotFound,
		},
		{
			name:   "server_error_without_body",
			status: http.StatusInternalServerError,
			call: func(c *APIClient) error {
				_, err := c.GetBidsByProperty(context.Background(), "1")
				return err
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, ClientConfig{})

			err := tc.call(client)
			require.Error(t, err)

			var apiErr *biddingerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, tc.wantMessage, apiErr.Message)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
		})
	}
}

func TestAPIClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, ClientConfig{Timeout: 50 * time.Millisecond})
	defer close(release)

	start := time.Now()
	_, err := client.GetProperty(context.Background(), "1")
	require.ErrorIs(t, err, biddingerrors.ErrRequestTimeout)
	require.Less(t, time.Since(start), 5*time.Second)
	require.Equal(t, "Request timed out, please retry",
		biddingerrors.UserMessage(err, biddingerrors.ErrLoadFailed))
}

// The deadline can also expire after the headers arrived, mid-body
func TestAPIClient_TimeoutWhileReadingBody(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": 1, "title": "Sunny`))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, ClientConfig{Timeout: 50 * time.Millisecond})
	defer close(release)

	_, err := client.GetProperty(context.Background(), "1")
	require.ErrorIs(t, err, biddingerrors.ErrRequestTimeout)
	require.Equal(t, "Request timed out, please retry",
		biddingerrors.UserMessage(err, biddingerrors.ErrLoadFailed))
}

func TestAPIClient_EmptyBidList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}, ClientConfig{})

	bids, err := client.GetBidsByProperty(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, bids)
	require.Empty(t, bids)
}

func TestNewAPIClient(t *testing.T) {
	client, err := NewAPIClient(ClientConfig{})
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, client.baseURL)
	require.Equal(t, DefaultRequestTimeout, client.timeout)

	client, err = NewAPIClient(ClientConfig{BaseURL: "localhost:3001/api/"})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3001/api", client.baseURL)
}
