package bidding

import (
	"fmt"
	"strings"
	"time"

	"release-auction/internal/biddingerrors"
	"release-auction/internal/models"

	"github.com/shopspring/decimal"
)

// BidMeetsFloor returns true if amount meets or exceeds the floor price.
// The comparison is exact: 999.999 does not meet a floor of 1000.
func BidMeetsFloor(amount decimal.Decimal, floor float64) bool {
	return amount.GreaterThanOrEqual(decimal.NewFromFloat(floor))
}

// Validate runs the client-side bid checks in a fixed order and stops at the
// first failure:
//
//  1. auction ended          -> ErrAuctionEnded
//  2. amount not positive    -> ErrInvalidAmount
//  3. amount below min price -> ErrBelowFloor
//  4. a date missing         -> ErrMissingDates
//  5. start not before end   -> ErrInvalidDateRange
//
// The result depends only on its arguments.
func Validate(input models.BidInput, p models.Property, now time.Time) (models.ValidatedBid, error) {
	if IsEnded(p, now) {
		return models.ValidatedBid{}, fmt.Errorf("validate bid on property %s: %w", p.ID, biddingerrors.ErrAuctionEnded)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return models.ValidatedBid{}, fmt.Errorf("validate bid on property %s: %w - %q", p.ID, biddingerrors.ErrInvalidAmount, input.Amount)
	}

	if !BidMeetsFloor(amount, p.MinPrice) {
		return models.ValidatedBid{}, fmt.Errorf("validate bid on property %s: %w - minimum is %.2f", p.ID, biddingerrors.ErrBelowFloor, p.MinPrice)
	}

	start, startErr := parseDate(input.StartDate)
	end, endErr := parseDate(input.EndDate)
	if startErr != nil || endErr != nil {
		return models.ValidatedBid{}, fmt.Errorf("validate bid on property %s: %w", p.ID, biddingerrors.ErrMissingDates)
	}

	if !start.Before(end) {
		return models.ValidatedBid{}, fmt.Errorf("validate bid on property %s: %w", p.ID, biddingerrors.ErrInvalidDateRange)
	}

	return models.ValidatedBid{Amount: amount.InexactFloat64(), StartDate: start, EndDate: end}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %s is not positive", value)
	}
	return value, nil
}

// parseDate treats blank and unparseable input alike: the date is missing
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, fmt.Errorf("date missing")
	}
	return models.ParseTimestamp(s)
}
