package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"release-auction/internal/biddingerrors"
	bidding "release-auction/internal/biddingService"
	"release-auction/internal/models"
	"release-auction/internal/repository"
	"release-auction/internal/server"
	"release-auction/internal/view"
	"release-auction/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const clearScreen = "\033[H\033[2J"

// errAuctionClosed stops the watch loop once the final screen is shown
var errAuctionClosed = errors.New("auction closed")

func run(ctx context.Context, args Args, out io.Writer) error {
	if args.Command == "sandbox" {
		return runSandbox(ctx, args)
	}

	client, err := repository.NewAPIClient(repository.ClientConfig{
		BaseURL: args.APIURL,
		Token:   args.Token,
		Timeout: args.RequestTimeout,
	})
	if err != nil {
		return err
	}
	svc := bidding.NewBiddingService(client, bidding.SystemClock)

	switch args.Command {
	case "watch":
		return runWatch(ctx, args, svc, out)
	case "bid":
		return runBid(ctx, args, svc, out)
	case "card":
		return runCard(ctx, args, svc, out)
	case "my-bids":
		return runMyBids(ctx, args, svc, out)
	}
	return fmt.Errorf("unknown command %q", args.Command)
}

func newAuctionView(args Args, svc *bidding.BiddingService) (*view.Auction, error) {
	role, err := view.ParseViewerRole(args.Role)
	if err != nil {
		return nil, err
	}
	return view.NewAuction(svc, models.ID(args.Target), role), nil
}

// runWatch renders the auction every tick until interrupted or closed. An
// optional second loop re-fetches the listing so new bids show up.
func runWatch(ctx context.Context, args Args, svc *bidding.BiddingService, out io.Writer) error {
	auction, err := newAuctionView(args, svc)
	if err != nil {
		return err
	}
	if err := auction.Load(ctx); err != nil {
		return errors.Join(err, view.Render(out, auction.Screen()))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return auction.Run(ctx, args.Tick, func(s view.Screen) error {
			if _, err := io.WriteString(out, clearScreen); err != nil {
				return err
			}
			if err := view.Render(out, s); err != nil {
				return err
			}
			if s.State.IsEnded {
				return errAuctionClosed
			}
			return nil
		})
	})
	if args.RefreshInterval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(args.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := auction.Refresh(ctx); err != nil {
						utils.Warn("watch: refresh failed", map[string]any{"property_id": args.Target, "error": err.Error()})
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errAuctionClosed) {
		return err
	}
	return nil
}

func runBid(ctx context.Context, args Args, svc *bidding.BiddingService, out io.Writer) error {
	auction, err := newAuctionView(args, svc)
	if err != nil {
		return err
	}
	if err := auction.Load(ctx); err != nil {
		return errors.Join(err, view.Render(out, auction.Screen()))
	}

	if args.Bid.Amount != "" {
		auction.SetAmount(args.Bid.Amount)
	}
	auction.SetDates(args.Bid.StartDate, args.Bid.EndDate)

	submitErr := auction.Submit(ctx)
	// the bid is on the server; a non-zero exit would invite a second one
	if errors.Is(submitErr, biddingerrors.ErrRefreshFailed) {
		submitErr = nil
	}
	if err := view.Render(out, auction.Screen()); err != nil {
		return errors.Join(submitErr, err)
	}
	return submitErr
}

func runCard(ctx context.Context, args Args, svc *bidding.BiddingService, out io.Writer) error {
	auction, err := newAuctionView(args, svc)
	if err != nil {
		return err
	}
	loadErr := auction.Load(ctx)
	return errors.Join(loadErr, view.RenderCard(out, auction.Screen()))
}

func runMyBids(ctx context.Context, args Args, svc *bidding.BiddingService, out io.Writer) error {
	bids, err := svc.GetUserBids(ctx, models.ID(args.UserID))
	if err != nil {
		return err
	}
	return view.RenderUserBids(out, bids)
}

// runSandbox serves the API over an in-memory store seeded with sample listings
func runSandbox(ctx context.Context, args Args) error {
	repo := repository.NewMemoryRepo()
	prepopulateListings(repo, time.Now().UTC())

	if args.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.SetupRouter(repo, bidding.SystemClock)
	srv := &http.Server{
		Addr:              args.SandboxAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("starting sandbox API", map[string]any{"addr": args.SandboxAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
