package handler

import (
	"context"
	"fmt"
	"net/http"

	bidding "release-auction/internal/biddingService"
	model "release-auction/internal/models"
	"release-auction/internal/repository"
	"release-auction/services/bidding/helpers"
	"release-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

// BidderContextKey is where the bearer middleware stores the resolved user
const BidderContextKey = "bidder"

// AuctionStore is the storage the sandbox API serves from
type AuctionStore interface {
	GetProperty(ctx context.Context, propertyID model.ID) (model.Property, error)
	GetBidsByProperty(ctx context.Context, propertyID model.ID) ([]model.Bid, error)
	CreateBid(ctx context.Context, propertyID model.ID, req model.CreateBidRequest) (model.Bid, error)
	GetBidsByUser(ctx context.Context, userID model.ID) (model.UserBids, error)
}

type BiddingHandler struct {
	store AuctionStore
	clock bidding.Clock
}

func NewBiddingHandler(store AuctionStore, clock bidding.Clock) *BiddingHandler {
	if clock == nil {
		clock = bidding.SystemClock
	}
	return &BiddingHandler{store: store, clock: clock}
}

// GetPropertyHandler handles GET /properties/:property_id
func (h *BiddingHandler) GetPropertyHandler(c *gin.Context) {
	propertyID := model.ID(c.Param("property_id"))
	p, err := h.store.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetPropertyHandler: error retrieving property", map[string]any{"property_id": propertyID, "error": err.Error()})
		return
	}

	if p.Bids == nil {
		p.Bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, p)
	helpers.LogSuccess("GetPropertyHandler", "property retrieved successfully", map[string]any{
		"property_id": propertyID,
		"bid_count":   len(p.Bids),
	})
}

// GetBidsByPropertyHandler handles GET /properties/:property_id/bids
func (h *BiddingHandler) GetBidsByPropertyHandler(c *gin.Context) {
	propertyID := model.ID(c.Param("property_id"))
	bids, err := h.store.GetBidsByProperty(c.Request.Context(), propertyID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetBidsByPropertyHandler: error retrieving bids", map[string]any{"property_id": propertyID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("GetBidsByPropertyHandler", "bids retrieved successfully", map[string]any{
		"property_id": propertyID,
		"count":       len(bids),
	})
}

// RecordBidHandler handles POST /bids/properties/:property_id/bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	propertyID := model.ID(c.Param("property_id"))

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.store.GetProperty(ctx, propertyID)
	if err == nil {
		_, err = bidding.Validate(req.BidInput(), p, h.clock())
	}
	if err != nil {
		h.bidFailed(c, propertyID, err)
		return
	}

	if v, ok := c.Get(BidderContextKey); ok {
		if user, ok := v.(model.User); ok {
			ctx = repository.WithBidder(ctx, user)
		}
	}

	bid, err := h.store.CreateBid(ctx, propertyID, req.CreateBidRequest())
	if err != nil {
		h.bidFailed(c, propertyID, err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid)
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":      bid.ID,
		"property_id": propertyID,
		"bidder":      bid.BidderName(),
		"amount":      bid.Amount,
	})
}

func (h *BiddingHandler) bidFailed(c *gin.Context, propertyID model.ID, err error) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, message)
	fields := map[string]any{
		"handler":     "RecordBidHandler",
		"property_id": propertyID,
		"error":       fmt.Sprintf("%s: %v", message, err),
	}
	if status >= http.StatusInternalServerError {
		utils.Error("RecordBidHandler: failed to record bid", fields)
		return
	}
	utils.Warn("RecordBidHandler: bid rejected", fields)
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := model.ID(c.Param("user_id"))
	bids, err := h.store.GetBidsByUser(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("GetBidsByUserHandler", "user bids retrieved successfully", map[string]any{
		"user_id": userID,
		"active":  len(bids.ActiveBids),
		"won":     len(bids.WonBids),
		"lost":    len(bids.LostBids),
	})
}
