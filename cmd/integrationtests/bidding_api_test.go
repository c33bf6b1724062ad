package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	bidding "release-auction/internal/biddingService"
	"release-auction/internal/biddingerrors"
	model "release-auction/internal/models"
	"release-auction/internal/view"
	"release-auction/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

// RecordBidHandler Tests
func TestRecordBidHandler(t *testing.T) {
	ended := openListing("ended", 1000)
	ended.AuctionEndDate = model.TimestampPtr(testNow.Add(-time.Minute))

	valid := helpers.PlaceBidRequest{Amount: 1200, StartDate: "2026-11-01", EndDate: "2027-05-01"}

	tests := []struct {
		name       string
		propertyID string
		token      string
		request    any
		wantStatus int
		wantError  string
		wantBidder string
	}{
		{name: "Valid_Bid_With_Token", propertyID: "101", token: alice.Token, request: valid, wantStatus: http.StatusCreated, wantBidder: alice.Name},
		{name: "Valid_Bid_Anonymous", propertyID: "101", request: valid, wantStatus: http.StatusCreated, wantBidder: model.AnonymousBidder},
		{name: "Unknown_Token_Is_Anonymous", propertyID: "101", token: "forged", request: valid, wantStatus: http.StatusCreated, wantBidder: model.AnonymousBidder},
		{name: "Invalid_JSON", propertyID: "101", request: "{amount: 100", wantStatus: http.StatusBadRequest, wantError: "Invalid request payload"},
		{name: "Unknown_Listing", propertyID: "999", request: valid, wantStatus: http.StatusNotFound, wantError: "Listing not found"},
		{name: "Auction_Ended", propertyID: "ended", request: valid, wantStatus: http.StatusConflict, wantError: "This auction has ended"},
		{
			name: "Below_Floor", propertyID: "101",
			request:    helpers.PlaceBidRequest{Amount: 999.99, StartDate: "2026-11-01", EndDate: "2027-05-01"},
			wantStatus: http.StatusConflict, wantError: "Bid amount is below the minimum price",
		},
		{
			name: "Below_Floor_By_Fraction_Of_Cent", propertyID: "101",
			request:    helpers.PlaceBidRequest{Amount: 999.999, StartDate: "2026-11-01", EndDate: "2027-05-01"},
			wantStatus: http.StatusConflict, wantError: "Bid amount is below the minimum price",
		},
		{
			name: "Equal_Dates", propertyID: "101",
			request:    helpers.PlaceBidRequest{Amount: 1200, StartDate: "2026-11-01", EndDate: "2026-11-01"},
			wantStatus: http.StatusBadRequest, wantError: "End date must be after start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := SetupTestRouterWithListings(openListing("101", 1000), ended)
			w := ExecuteRequest(t, router, http.MethodPost, "/api/bids/properties/"+tt.propertyID+"/bids", tt.token, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.wantError != "" {
				require.Equal(t, tt.wantError, resp["error"])
				return
			}

			require.NotEmpty(t, resp["id"])
			require.Equal(t, 1200.0, resp["amount"])
			require.Equal(t, "active", resp["status"])
			_, err := time.Parse(time.RFC3339, resp["created_at"].(string))
			require.NoError(t, err)

			w = ExecuteRequest(t, router, http.MethodGet, "/api/properties/"+tt.propertyID, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			var p model.Property
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
			require.Len(t, p.Bids, 1)
			require.Equal(t, tt.wantBidder, p.Bids[0].BidderName())
		})
	}
}

// GetBidsByPropertyHandler Tests
func TestGetBidsByPropertyHandler(t *testing.T) {
	router, _ := SetupTestRouterWithListings(openListing("101", 1000), openListing("102", 500))

	for _, amount := range []float64{1100, 1300} {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/bids/properties/101/bids", alice.Token,
			helpers.PlaceBidRequest{Amount: amount, StartDate: "2026-11-01", EndDate: "2027-05-01"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := ExecuteRequest(t, router, http.MethodGet, "/api/properties/101/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bids []model.Bid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bids))
	require.Len(t, bids, 2)
	require.Equal(t, 1100.0, bids[0].Amount, "insertion order is kept")
	require.Equal(t, 1300.0, bids[1].Amount)

	w = ExecuteRequest(t, router, http.MethodGet, "/api/properties/102/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = ExecuteRequest(t, router, http.MethodGet, "/api/properties/999/bids", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// GetBidsByUserHandler Tests
func TestGetBidsByUserHandler(t *testing.T) {
	router, repo := SetupTestRouterWithListings(openListing("101", 1000), openListing("102", 500))

	for _, id := range []string{"101", "102"} {
		w := ExecuteRequest(t, router, http.MethodPost, "/api/bids/properties/"+id+"/bids", alice.Token,
			helpers.PlaceBidRequest{Amount: 1100, StartDate: "2026-11-01", EndDate: "2027-05-01"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	bids, err := repo.GetBidsByProperty(context.Background(), "102")
	require.NoError(t, err)
	require.NoError(t, repo.SetBidStatus("102", bids[0].ID, model.BidStatusWon))

	client := StartTestServer(t, router, alice.Token)
	svc := bidding.NewBiddingService(client, bidding.FixedClock(testNow))

	userBids, err := svc.GetUserBids(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, userBids.ActiveBids, 1)
	require.Equal(t, model.ID("101"), userBids.ActiveBids[0].Property.ID)
	require.Len(t, userBids.WonBids, 1)
	require.Empty(t, userBids.LostBids)

	var out bytes.Buffer
	require.NoError(t, view.RenderUserBids(&out, userBids))
	require.Contains(t, out.String(), "[Won]")
	require.NotContains(t, out.String(), "You have no")

	_, err = svc.GetUserBids(context.Background(), "404")
	require.ErrorIs(t, err, biddingerrors.ErrUserNotFound)
}
