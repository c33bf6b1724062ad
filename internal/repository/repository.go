package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"release-auction/internal/biddingerrors"
	model "release-auction/internal/models"
	"release-auction/utils"

	"github.com/samber/lo"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionAPI is the slice of the ReLease REST API the auction core consumes
type AuctionAPI interface {
	GetProperty(ctx context.Context, propertyID model.ID) (model.Property, error)
	GetBidsByProperty(ctx context.Context, propertyID model.ID) ([]model.Bid, error)
	CreateBid(ctx context.Context, propertyID model.ID, req model.CreateBidRequest) (model.Bid, error)
	GetBidsByUser(ctx context.Context, userID model.ID) (model.UserBids, error)
}

// BidderResolver maps a bearer token to the bidding user
type BidderResolver interface {
	UserByToken(token string) (model.User, bool)
}

type bidderKey struct{}

// WithBidder attaches the bidding user to ctx for MemoryRepo.CreateBid
func WithBidder(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, bidderKey{}, user)
}

func bidderFrom(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(bidderKey{}).(model.User)
	return user, ok
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionAPI.
// It backs the sandbox API; it stores whatever it is given and leaves bid
// rules to the caller.
type MemoryRepo struct {
	mu         sync.RWMutex
	properties map[model.ID]model.Property // key: propertyID -> property without bids
	bids       map[model.ID][]model.Bid    // key: propertyID -> bids in insertion order
	users      map[model.ID]model.User     // key: userID -> user
	now        func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		properties: make(map[model.ID]model.Property),
		bids:       make(map[model.ID][]model.Bid),
		users:      make(map[model.ID]model.User),
		now:        time.Now,
	}
}

// SetClock replaces the clock used for created_at
func (r *MemoryRepo) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// AddProperty stores a property. Bids carried on p are kept in order.
func (r *MemoryRepo) AddProperty(p model.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bids[p.ID] = append([]model.Bid(nil), p.Bids...)
	p.Bids = nil
	r.properties[p.ID] = p
}

// AddUser registers a bidder that can be resolved from its token
func (r *MemoryRepo) AddUser(u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

// UserByToken implements BidderResolver
func (r *MemoryRepo) UserByToken(token string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if token == "" {
		return model.User{}, false
	}
	return lo.Find(lo.Values(r.users), func(u model.User) bool { return u.Token == token })
}

// SetBidStatus records a server-side status change, e.g. after close-out
func (r *MemoryRepo) SetBidStatus(propertyID, bidID model.ID, status model.BidStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bids := r.bids[propertyID]
	for i := range bids {
		if bids[i].ID == bidID {
			bids[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("set status of bid %s on property %s: %w", bidID, propertyID, biddingerrors.ErrBidNotFound)
}

// GetProperty returns the property with its bids in insertion order
func (r *MemoryRepo) GetProperty(_ context.Context, propertyID model.ID) (model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[propertyID]
	if !ok {
		return model.Property{}, fmt.Errorf("get property %s: %w", propertyID, biddingerrors.ErrPropertyNotFound)
	}
	p.Bids = append([]model.Bid{}, r.bids[propertyID]...)
	return p, nil
}

// GetBidsByProperty returns all bids for a property
func (r *MemoryRepo) GetBidsByProperty(_ context.Context, propertyID model.ID) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.properties[propertyID]; !ok {
		return nil, fmt.Errorf("get bids for property %s: %w", propertyID, biddingerrors.ErrPropertyNotFound)
	}
	return append([]model.Bid{}, r.bids[propertyID]...), nil
}

// CreateBid appends a new active bid. The bidder is taken from ctx.
func (r *MemoryRepo) CreateBid(ctx context.Context, propertyID model.ID, req model.CreateBidRequest) (model.Bid, error) {
	start, err := model.ParseTimestamp(req.StartDate)
	if err != nil {
		return model.Bid{}, fmt.Errorf("create bid on property %s: %w", propertyID, biddingerrors.ErrMissingDates)
	}
	end, err := model.ParseTimestamp(req.EndDate)
	if err != nil {
		return model.Bid{}, fmt.Errorf("create bid on property %s: %w", propertyID, biddingerrors.ErrMissingDates)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[propertyID]; !ok {
		return model.Bid{}, fmt.Errorf("create bid on property %s: %w", propertyID, biddingerrors.ErrPropertyNotFound)
	}

	bid := model.Bid{
		ID:        model.ID(utils.GenerateID()),
		Amount:    req.Amount,
		StartDate: model.NewTimestamp(start),
		EndDate:   model.NewTimestamp(end),
		CreatedAt: model.NewTimestamp(r.now().UTC()),
		Status:    model.BidStatusActive,
	}
	if user, ok := bidderFrom(ctx); ok {
		bid.Bidder = &model.Bidder{Name: user.Name, Email: user.Email}
	}

	r.bids[propertyID] = append(r.bids[propertyID], bid)
	return bid, nil
}

// GetBidsByUser returns the user's bids grouped by status
func (r *MemoryRepo) GetBidsByUser(_ context.Context, userID model.ID) (model.UserBids, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.UserBids{}, fmt.Errorf("get bids for user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}

	var all []model.UserBid
	for propertyID, bids := range r.bids {
		p := r.properties[propertyID]
		for _, b := range bids {
			if b.Bidder == nil || b.Bidder.Email != user.Email {
				continue
			}
			all = append(all, model.UserBid{
				Bid:      b,
				Property: model.PropertySummary{ID: p.ID, Title: p.Title, FormattedAddress: p.FormattedAddress},
			})
		}
	}

	byStatus := lo.GroupBy(all, func(b model.UserBid) model.BidStatus { return b.Status })
	return model.UserBids{
		ActiveBids: sortByCreated(byStatus[model.BidStatusActive]),
		WonBids:    sortByCreated(byStatus[model.BidStatusWon]),
		LostBids:   sortByCreated(byStatus[model.BidStatusLost]),
	}, nil
}

// sortByCreated orders newest first and never returns nil
func sortByCreated(bids []model.UserBid) []model.UserBid {
	out := append([]model.UserBid{}, bids...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt.Time) })
	return out
}
