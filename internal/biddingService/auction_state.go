package bidding

import (
	"fmt"
	"time"

	"release-auction/internal/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AuctionEndedText is shown in place of the countdown once the deadline passed
const AuctionEndedText = "Auction ended"

// Clock returns the current time. Views and the validator take one so tests
// can pin "now".
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time { return time.Now() }

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// AuctionStatus is the per-auction state observed by views
type AuctionStatus string

const (
	StatusOpen   AuctionStatus = "open"
	StatusClosed AuctionStatus = "closed"
)

// AuctionState is everything a view derives from a property at one instant.
// It is recomputed on every tick and never stored across refreshes.
type AuctionState struct {
	Status            AuctionStatus
	HasAuction        bool
	IsEnded           bool
	TimeLeft          string
	EndsAt            time.Time
	CurrentHighestBid float64
	BidCount          int
}

// Derive computes the auction state of p at now
func Derive(p models.Property, now time.Time) AuctionState {
	state := AuctionState{
		Status:            Status(p, now),
		HasAuction:        p.HasAuction(),
		IsEnded:           IsEnded(p, now),
		TimeLeft:          TimeLeft(p, now),
		CurrentHighestBid: CurrentHighestBid(p),
		BidCount:          len(p.Bids),
	}
	if state.HasAuction {
		state.EndsAt = p.AuctionEndDate.Time
	}
	return state
}

// IsEnded reports whether the auction deadline is set and not after now.
// A property without a deadline has no auction and is never ended.
func IsEnded(p models.Property, now time.Time) bool {
	return p.HasAuction() && !p.AuctionEndDate.After(now)
}

// Status maps IsEnded onto the Open -> Closed machine
func Status(p models.Property, now time.Time) AuctionStatus {
	if IsEnded(p, now) {
		return StatusClosed
	}
	return StatusOpen
}

// TimeLeft renders the countdown to the deadline, "Auction ended" once it
// passed, and "" when the property has no auction.
func TimeLeft(p models.Property, now time.Time) string {
	if !p.HasAuction() {
		return ""
	}
	if IsEnded(p, now) {
		return AuctionEndedText
	}
	return FormatCountdown(p.AuctionEndDate.Sub(now))
}

// FormatCountdown splits d into days, hours, minutes and seconds, truncating
// at every unit.
func FormatCountdown(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	const (
		second = int64(1000)
		minute = 60 * second
		hour   = 60 * minute
		day    = 24 * hour
	)
	days := ms / day
	hours := ms % day / hour
	minutes := ms % hour / minute
	seconds := ms % minute / second
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// CurrentHighestBid is the larger of the floor price and the best bid
func CurrentHighestBid(p models.Property) float64 {
	if len(p.Bids) == 0 {
		return p.MinPrice
	}
	best := lo.MaxBy(p.Bids, func(a, b models.Bid) bool { return a.Amount > b.Amount })
	return max(p.MinPrice, best.Amount)
}

// Competitiveness is how far a bid sits above the floor, as a percentage
// capped at 100. It is presentational only and never gates a bid.
func Competitiveness(amount string, minPrice float64) float64 {
	if minPrice <= 0 {
		return 0
	}
	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() {
		return 0
	}
	pct := value.Div(decimal.NewFromFloat(minPrice)).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}
