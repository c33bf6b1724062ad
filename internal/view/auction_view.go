package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"release-auction/internal/biddingerrors"
	bidding "release-auction/internal/biddingService"
	"release-auction/internal/models"
	"release-auction/utils"

	"github.com/samber/lo"
)

// ViewerRole selects what an auction view offers to whoever is looking at it
type ViewerRole string

const (
	RoleBuyer     ViewerRole = "buyer"
	RoleSeller    ViewerRole = "seller"
	RoleAnonymous ViewerRole = "anonymous"
)

// ParseViewerRole validates a role name
func ParseViewerRole(s string) (ViewerRole, error) {
	switch r := ViewerRole(s); r {
	case RoleBuyer, RoleSeller, RoleAnonymous:
		return r, nil
	}
	return "", fmt.Errorf("unknown viewer role %q", s)
}

// LoadState tracks the initial fetch of a view
type LoadState string

const (
	LoadStateLoading  LoadState = "loading"
	LoadStateReady    LoadState = "ready"
	LoadStateNotFound LoadState = "not_found"
	LoadStateFailed   LoadState = "failed"
)

// BidPlacedNotice is shown once the server accepted a bid, even if the
// listing could not be re-fetched afterwards
const BidPlacedNotice = "Bid placed successfully!"

// AuctionService is what a view needs from the bidding workflow
type AuctionService interface {
	Now() time.Time
	LoadProperty(ctx context.Context, propertyID models.ID) (models.Property, error)
	PlaceBid(ctx context.Context, p models.Property, input models.BidInput) (models.Property, error)
}

// BidForm holds the raw bid inputs. They survive failed submissions.
type BidForm struct {
	Amount    string
	StartDate string
	EndDate   string

	amountEdited bool
}

// Input returns the form as validator input
func (f BidForm) Input() models.BidInput {
	return models.BidInput{Amount: f.Amount, StartDate: f.StartDate, EndDate: f.EndDate}
}

// Auction is the state of one mounted auction view. It owns its property
// snapshot; nothing is shared with other views.
type Auction struct {
	service    AuctionService
	propertyID models.ID
	role       ViewerRole

	submitting atomic.Bool

	mu       sync.Mutex
	state    LoadState
	property models.Property
	gen      uint64 // bumped on every snapshot swap
	form     BidForm
	errMsg   string
	notice   string
}

// NewAuction creates the view for one property
func NewAuction(service AuctionService, propertyID models.ID, role ViewerRole) *Auction {
	return &Auction{
		service:    service,
		propertyID: propertyID,
		role:       role,
		state:      LoadStateLoading,
	}
}

// Load fetches the property. A failure leaves the view in a terminal
// not-found or failed state.
func (a *Auction) Load(ctx context.Context) error {
	a.mu.Lock()
	a.state = LoadStateLoading
	a.mu.Unlock()

	p, err := a.service.LoadProperty(ctx, a.propertyID)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.state = LoadStateFailed
		if errors.Is(err, biddingerrors.ErrPropertyNotFound) {
			a.state = LoadStateNotFound
		}
		a.errMsg = biddingerrors.UserMessage(err, biddingerrors.ErrLoadFailed)
		utils.Warn("auction view: load failed", map[string]any{"property_id": a.propertyID, "error": err.Error()})
		return err
	}

	a.replace(p)
	a.state = LoadStateReady
	return nil
}

// Refresh re-fetches the property outside of a submission. A failed refresh
// keeps the current snapshot and only sets the error message.
func (a *Auction) Refresh(ctx context.Context) error {
	if a.submitting.Load() {
		return nil
	}

	a.mu.Lock()
	startGen := a.gen
	a.mu.Unlock()

	p, err := a.service.LoadProperty(ctx, a.propertyID)

	a.mu.Lock()
	defer a.mu.Unlock()
	// a submission started or finished meanwhile; its snapshot is newer
	if a.gen != startGen || a.submitting.Load() {
		return nil
	}
	if err != nil {
		a.errMsg = biddingerrors.UserMessage(err, biddingerrors.ErrLoadFailed)
		return err
	}
	a.replace(p)
	a.state = LoadStateReady
	return nil
}

// replace swaps in a fresh snapshot; caller holds mu
func (a *Auction) replace(p models.Property) {
	a.property = p
	a.gen++
	if !a.form.amountEdited {
		a.form.Amount = FormatAmountInput(p.MinPrice)
	}
}

// SetAmount records the user's amount entry
func (a *Auction) SetAmount(amount string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form.Amount = amount
	a.form.amountEdited = true
}

// SetDates records the requested tenancy window
func (a *Auction) SetDates(start, end string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form.StartDate = start
	a.form.EndDate = end
}

// DismissError clears the error and notice messages
func (a *Auction) DismissError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = ""
	a.notice = ""
}

// Submitting reports whether a submission is in flight
func (a *Auction) Submitting() bool {
	return a.submitting.Load()
}

// Submit places a bid from the current form. Only one submission runs at a
// time; a concurrent call gets ErrSubmissionInFlight and changes nothing. The
// form stays disabled until the post-submit refresh finished, and keeps its
// values when anything fails. When the bid went through but the refresh did
// not, the placed notice is shown next to the error and the old snapshot is
// kept until the next refresh.
func (a *Auction) Submit(ctx context.Context) error {
	switch a.role {
	case RoleAnonymous:
		return a.fail(fmt.Errorf("submit bid: %w", biddingerrors.ErrLoginRequired))
	case RoleSeller:
		return a.fail(fmt.Errorf("submit bid: %w", biddingerrors.ErrOwnListing))
	}

	if !a.submitting.CompareAndSwap(false, true) {
		return fmt.Errorf("submit bid: %w", biddingerrors.ErrSubmissionInFlight)
	}
	defer a.submitting.Store(false)

	a.mu.Lock()
	if a.state != LoadStateReady {
		a.mu.Unlock()
		return fmt.Errorf("submit bid: %w", biddingerrors.ErrLoadFailed)
	}
	p, input := a.property, a.form.Input()
	a.errMsg, a.notice = "", ""
	a.mu.Unlock()

	refreshed, err := a.service.PlaceBid(ctx, p, input)
	if errors.Is(err, biddingerrors.ErrRefreshFailed) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.errMsg = biddingerrors.UserMessage(err, biddingerrors.ErrSubmissionFailed)
		a.notice = BidPlacedNotice
		utils.Warn("auction view: bid placed but refresh failed", map[string]any{"property_id": a.propertyID, "error": err.Error()})
		return err
	}
	if err != nil {
		return a.fail(err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.replace(refreshed)
	a.notice = BidPlacedNotice
	return nil
}

func (a *Auction) fail(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = biddingerrors.UserMessage(err, biddingerrors.ErrSubmissionFailed)
	return err
}

// HistoryRow is one line of the bid history table
type HistoryRow struct {
	Bidder    string
	Amount    string
	Time      string
	StartDate string
	EndDate   string
	Status    string
}

// Screen is everything the view shows at one instant
type Screen struct {
	Role      ViewerRole
	LoadState LoadState
	Property  models.Property
	State     bidding.AuctionState
	Form      BidForm

	Competitiveness float64
	Submitting      bool
	Error           string
	Notice          string

	ShowBidForm     bool
	ShowEndedBanner bool
	ShowLoginPrompt bool
	ShowTenancy     bool
	History         []HistoryRow
}

// Screen derives the display from the current snapshot and the clock. The
// auction status is recomputed here on every call, never stored.
func (a *Auction) Screen() Screen {
	now := a.service.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	s := Screen{
		Role:       a.role,
		LoadState:  a.state,
		Property:   a.property,
		Form:       a.form,
		Submitting: a.submitting.Load(),
		Error:      a.errMsg,
		Notice:     a.notice,
	}
	if a.state != LoadStateReady {
		return s
	}

	s.State = bidding.Derive(a.property, now)
	s.Competitiveness = bidding.Competitiveness(a.form.Amount, a.property.MinPrice)
	s.ShowEndedBanner = s.State.IsEnded
	s.ShowBidForm = !s.State.IsEnded && a.role == RoleBuyer
	s.ShowLoginPrompt = !s.State.IsEnded && a.role == RoleAnonymous
	s.ShowTenancy = a.role != RoleSeller
	s.History = historyRows(a.property.Bids)
	return s
}

// historyRows keeps server order
func historyRows(bids []models.Bid) []HistoryRow {
	return lo.Map(bids, func(b models.Bid, _ int) HistoryRow {
		return HistoryRow{
			Bidder:    b.BidderName(),
			Amount:    FormatPrice(b.Amount),
			Time:      FormatDateTime(b.CreatedAt.Time),
			StartDate: FormatDate(b.StartDate.Time),
			EndDate:   FormatDate(b.EndDate.Time),
			Status:    capitalize(string(b.Status)),
		}
	})
}

// Run renders the screen now and then once per interval until ctx is done or
// render fails. The ticker is stopped on every return path.
func (a *Auction) Run(ctx context.Context, interval time.Duration, render func(Screen) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := render(a.Screen()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := render(a.Screen()); err != nil {
				return err
			}
		}
	}
}
