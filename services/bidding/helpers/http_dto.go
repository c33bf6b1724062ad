package helpers

import (
	"strconv"

	model "release-auction/internal/models"
)

// PlaceBidRequest is the create-bid body as accepted by the sandbox API
type PlaceBidRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
}

// BidInput replays the request through the same checks the client runs
func (r PlaceBidRequest) BidInput() model.BidInput {
	return model.BidInput{
		Amount:    strconv.FormatFloat(r.Amount, 'f', -1, 64),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// CreateBidRequest converts the request for the store
func (r PlaceBidRequest) CreateBidRequest() model.CreateBidRequest {
	return model.CreateBidRequest{
		Amount:    r.Amount,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
