package models

import "time"

// BidStatus is owned by the server; the client only reads it
type BidStatus string

const (
	BidStatusActive BidStatus = "active"
	BidStatusWon    BidStatus = "won"
	BidStatusLost   BidStatus = "lost"
)

const (
	AnonymousBidder  = "Anonymous"
	PlaceholderImage = "/placeholder.jpg"
)

// Image is one entry of a property's ordered photo list
type Image struct {
	ID       ID     `json:"id"`
	ImageURL string `json:"image_url"`
}

// Bidder is denormalized onto each bid by the API
type Bidder struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Bid represents a tenant's offer on a property
type Bid struct {
	ID        ID        `json:"id"`
	Amount    float64   `json:"amount"`
	StartDate Timestamp `json:"start_date"`
	EndDate   Timestamp `json:"end_date"`
	CreatedAt Timestamp `json:"created_at"`
	Bidder    *Bidder   `json:"bidder"`
	Status    BidStatus `json:"status"`
}

// BidderName returns the bidder's display name, falling back to "Anonymous"
func (b Bid) BidderName() string {
	if b.Bidder == nil || b.Bidder.Name == "" {
		return AnonymousBidder
	}
	return b.Bidder.Name
}

// Property represents a rental listing together with its auction
type Property struct {
	ID               ID         `json:"id"`
	UserID           ID         `json:"user_id"`
	Title            string     `json:"title"`
	FormattedAddress string     `json:"formatted_address"`
	MinPrice         float64    `json:"min_price"`
	StartDate        Timestamp  `json:"start_date"`
	EndDate          Timestamp  `json:"end_date"`
	AuctionEndDate   *Timestamp `json:"auction_end_date"`
	Images           []Image    `json:"images"`
	Amenities        []string   `json:"amenities"`
	Bids             []Bid      `json:"bids"`
}

// HasAuction reports whether auction semantics apply to the property
func (p Property) HasAuction() bool {
	return p.AuctionEndDate != nil && !p.AuctionEndDate.IsZero()
}

// CoverImageURL returns the first image or the placeholder
func (p Property) CoverImageURL() string {
	if len(p.Images) == 0 || p.Images[0].ImageURL == "" {
		return PlaceholderImage
	}
	return p.Images[0].ImageURL
}

// BidInput is what the user typed into the bid form
type BidInput struct {
	Amount    string
	StartDate string
	EndDate   string
}

// ValidatedBid is a BidInput that passed client-side validation
type ValidatedBid struct {
	Amount    float64
	StartDate time.Time
	EndDate   time.Time
}

// CreateBidRequest is the create-bid wire body
type CreateBidRequest struct {
	Amount    float64 `json:"amount"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

// NewCreateBidRequest converts a validated bid into its wire form
func NewCreateBidRequest(bid ValidatedBid) CreateBidRequest {
	return CreateBidRequest{
		Amount:    bid.Amount,
		StartDate: bid.StartDate.UTC().Format(DateLayout),
		EndDate:   bid.EndDate.UTC().Format(DateLayout),
	}
}

// PropertySummary is the slice of a property embedded in a user's bid
type PropertySummary struct {
	ID               ID     `json:"id"`
	Title            string `json:"title"`
	FormattedAddress string `json:"formatted_address"`
}

// UserBid is a bid as listed on the bidder's profile
type UserBid struct {
	Bid
	Property PropertySummary `json:"property"`
}

// UserBids groups a user's bids by status
type UserBids struct {
	ActiveBids []UserBid `json:"active_bids"`
	WonBids    []UserBid `json:"won_bids"`
	LostBids   []UserBid `json:"lost_bids"`
}

// PastBids returns won bids followed by lost bids
func (u UserBids) PastBids() []UserBid {
	past := make([]UserBid, 0, len(u.WonBids)+len(u.LostBids))
	past = append(past, u.WonBids...)
	return append(past, u.LostBids...)
}

// User is a participant known to the API
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"-"`
}
