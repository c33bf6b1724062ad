package bidding

import (
	"context"
	"fmt"
	"time"

	"release-auction/internal/biddingerrors"
	"release-auction/internal/models"
	"release-auction/internal/repository"
	"release-auction/utils"
)

// BiddingService is the client-side bidding workflow: it loads listings,
// validates bids against the injected clock and submits them through the API
type BiddingService struct {
	api   repository.AuctionAPI
	clock Clock
}

// NewBiddingService creates a new BiddingService instance. A nil clock means
// the wall clock.
func NewBiddingService(api repository.AuctionAPI, clock Clock) *BiddingService {
	if clock == nil {
		clock = SystemClock
	}
	return &BiddingService{
		api:   api,
		clock: clock,
	}
}

// Now returns the service's current time
func (s *BiddingService) Now() time.Time {
	return s.clock()
}

// LoadProperty fetches a property with its bids
func (s *BiddingService) LoadProperty(ctx context.Context, propertyID models.ID) (models.Property, error) {
	if propertyID == "" {
		return models.Property{}, fmt.Errorf("service: %w - empty property ID", biddingerrors.ErrPropertyNotFound)
	}

	p, err := s.api.GetProperty(ctx, propertyID)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: failed to load property %s: %w", propertyID, err)
	}
	return p, nil
}

// GetBidsForProperty fetches only the bid list of a property
func (s *BiddingService) GetBidsForProperty(ctx context.Context, propertyID models.ID) ([]models.Bid, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("service: %w - empty property ID", biddingerrors.ErrPropertyNotFound)
	}

	bids, err := s.api.GetBidsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for property %s: %w", propertyID, err)
	}
	return bids, nil
}

// GetUserBids fetches the bids a user placed, grouped by status
func (s *BiddingService) GetUserBids(ctx context.Context, userID models.ID) (models.UserBids, error) {
	if userID == "" {
		return models.UserBids{}, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrUserNotFound)
	}

	bids, err := s.api.GetBidsByUser(ctx, userID)
	if err != nil {
		return models.UserBids{}, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// ValidateBid checks input against p at the service's current time
func (s *BiddingService) ValidateBid(input models.BidInput, p models.Property) (models.ValidatedBid, error) {
	return Validate(input, p, s.clock())
}

// PlaceBid validates input against the given snapshot and submits it. An
// ended auction is refused here even when the caller skipped the form.
func (s *BiddingService) PlaceBid(ctx context.Context, p models.Property, input models.BidInput) (models.Property, error) {
	bid, err := s.ValidateBid(input, p)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: %w", err)
	}
	return s.SubmitBid(ctx, p.ID, bid)
}

// SubmitBid posts the bid and then re-fetches the whole property. The
// create-bid answer is ignored: accepting a bid may change other bids on the
// server, so only a fresh read is authoritative.
func (s *BiddingService) SubmitBid(ctx context.Context, propertyID models.ID, bid models.ValidatedBid) (models.Property, error) {
	if _, err := s.api.CreateBid(ctx, propertyID, models.NewCreateBidRequest(bid)); err != nil {
		return models.Property{}, fmt.Errorf("service: %w on property %s: %w", biddingerrors.ErrSubmissionFailed, propertyID, err)
	}

	refreshed, err := s.api.GetProperty(ctx, propertyID)
	if err != nil {
		return models.Property{}, fmt.Errorf("service: %w for property %s: %w", biddingerrors.ErrRefreshFailed, propertyID, err)
	}

	utils.Info("bid placed", map[string]any{
		"property_id": propertyID,
		"amount":      bid.Amount,
		"start_date":  bid.StartDate.Format(models.DateLayout),
		"end_date":    bid.EndDate.Format(models.DateLayout),
		"bid_count":   len(refreshed.Bids),
	})
	return refreshed, nil
}
