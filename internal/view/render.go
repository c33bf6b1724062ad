package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	bidding "release-auction/internal/biddingService"
	"release-auction/internal/models"
)

const (
	EndedBanner      = "Auction has ended"
	NoBidsText       = "No bids yet"
	LoginPromptText  = "Log in to place a bid"
	NotFoundText     = "Listing not found"
	LoadingText      = "Loading..."
	competitionCells = 20
)

// errWriter keeps the first write error so rendering code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Render writes the full auction view
func Render(w io.Writer, s Screen) error {
	ew := &errWriter{w: w}

	switch s.LoadState {
	case LoadStateLoading:
		ew.printf("%s\n", LoadingText)
		return ew.err
	case LoadStateNotFound:
		ew.printf("%s\n", NotFoundText)
		return ew.err
	case LoadStateFailed:
		ew.printf("%s\n", s.Error)
		return ew.err
	}

	p := s.Property
	ew.printf("%s\n", p.Title)
	if p.FormattedAddress != "" {
		ew.printf("%s\n", p.FormattedAddress)
	}
	ew.printf("Photo: %s", p.CoverImageURL())
	if len(p.Images) > 1 {
		ew.printf(" (+%d more)", len(p.Images)-1)
	}
	ew.printf("\n")
	if !p.StartDate.IsZero() || !p.EndDate.IsZero() {
		ew.printf("Available: %s - %s\n", FormatDate(p.StartDate.Time), FormatDate(p.EndDate.Time))
	}
	ew.printf("Minimum price: %s/month\n", FormatPrice(p.MinPrice))
	if len(p.Amenities) > 0 {
		ew.printf("Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	ew.printf("\n")

	renderAuctionBox(ew, s)

	if s.Error != "" {
		ew.printf("Error: %s\n", s.Error)
	}
	if s.Notice != "" {
		ew.printf("%s\n", s.Notice)
	}
	ew.printf("%s\n\n", bidCountText(s.State.BidCount))

	if ew.err != nil {
		return ew.err
	}
	return renderHistory(w, s)
}

func renderAuctionBox(ew *errWriter, s Screen) {
	if s.State.HasAuction {
		if s.ShowEndedBanner {
			ew.printf("Auction ended:\n%s\n", EndedBanner)
		} else {
			ew.printf("Auction ends in: %s\n", s.State.TimeLeft)
			ew.printf("Ends on %s\n", FormatDateTime(s.State.EndsAt))
		}
	}
	ew.printf("Current highest bid: %s\n\n", FormatPrice(s.State.CurrentHighestBid))

	switch {
	case s.ShowBidForm:
		ew.printf("Your bid amount: $%s\n", s.Form.Amount)
		ew.printf("Bid competitiveness: %s\n", competitivenessBar(s.Competitiveness))
		ew.printf("Start date: %s\n", orUnset(s.Form.StartDate))
		ew.printf("End date: %s\n", orUnset(s.Form.EndDate))
		if s.Submitting {
			ew.printf("[ Placing Bid... ]\n")
		} else {
			ew.printf("[ Place Bid ]\n")
		}
	case s.ShowLoginPrompt:
		ew.printf("%s\n", LoginPromptText)
	}
}

func renderHistory(w io.Writer, s Screen) error {
	if _, err := fmt.Fprintln(w, "Bid History"); err != nil {
		return err
	}
	if len(s.History) == 0 {
		_, err := fmt.Fprintln(w, NoBidsText)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if s.ShowTenancy {
		fmt.Fprintln(tw, "BIDDER\tAMOUNT\tTIME\tSTART DATE\tEND DATE\tSTATUS")
		for _, r := range s.History {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Bidder, r.Amount, r.Time, r.StartDate, r.EndDate, r.Status)
		}
	} else {
		fmt.Fprintln(tw, "BIDDER\tAMOUNT\tTIME\tSTATUS")
		for _, r := range s.History {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Bidder, r.Amount, r.Time, r.Status)
		}
	}
	return tw.Flush()
}

// RenderCard writes the compact search-result card
func RenderCard(w io.Writer, s Screen) error {
	ew := &errWriter{w: w}
	if s.LoadState != LoadStateReady {
		return Render(w, s)
	}

	p := s.Property
	ew.printf("%s\n", p.Title)
	if p.FormattedAddress != "" {
		ew.printf("%s\n", p.FormattedAddress)
	}
	ew.printf("%s · %s", FormatPrice(s.State.CurrentHighestBid), bidCountText(s.State.BidCount))
	switch {
	case !s.State.HasAuction:
	case s.State.IsEnded:
		ew.printf(" · %s", bidding.AuctionEndedText)
	default:
		ew.printf(" · Ends in %s", s.State.TimeLeft)
	}
	ew.printf("\n")
	return ew.err
}

// RenderUserBids writes a bidder's active and past bids
func RenderUserBids(w io.Writer, bids models.UserBids) error {
	ew := &errWriter{w: w}
	ew.printf("Your Bids\n\nActive Bids\n")
	renderUserBidList(ew, bids.ActiveBids, "You have no active bids.")
	ew.printf("\nPast Bids\n")
	renderUserBidList(ew, bids.PastBids(), "You have no past bids.")
	return ew.err
}

func renderUserBidList(ew *errWriter, bids []models.UserBid, empty string) {
	if len(bids) == 0 {
		ew.printf("%s\n", empty)
		return
	}
	for _, b := range bids {
		ew.printf("- %s  %s/month  [%s]\n", b.Property.Title, FormatPrice(b.Amount), capitalize(string(b.Status)))
		if b.Property.FormattedAddress != "" {
			ew.printf("  %s\n", b.Property.FormattedAddress)
		}
		ew.printf("  Bid placed on %s\n", FormatDate(b.CreatedAt.Time))
	}
}

func bidCountText(n int) string {
	if n == 1 {
		return "1 bid so far"
	}
	return fmt.Sprintf("%d bids so far", n)
}

func competitivenessBar(pct float64) string {
	filled := int(pct / 100 * competitionCells)
	filled = max(0, min(competitionCells, filled))
	return fmt.Sprintf("[%s%s] %.0f%%", strings.Repeat("#", filled), strings.Repeat("-", competitionCells-filled), pct)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
