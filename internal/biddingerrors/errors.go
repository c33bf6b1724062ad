package biddingerrors

import (
	"errors"
	"fmt"
)

// Validation errors, checked client-side before any network write
var (
	ErrAuctionEnded     = errors.New("this auction has ended")
	ErrInvalidAmount    = errors.New("please enter a valid bid amount")
	ErrBelowFloor       = errors.New("bid amount is below the minimum price")
	ErrMissingDates     = errors.New("please select both start and end dates")
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// Repository-level errors
var (
	ErrPropertyNotFound = errors.New("listing not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBidNotFound      = errors.New("bid not found")
)

// Submission errors
var (
	ErrSubmissionInFlight = errors.New("a bid is already being placed")
	ErrSubmissionFailed   = errors.New("failed to place bid")
	ErrLoadFailed         = errors.New("failed to load listing")
	ErrRefreshFailed      = errors.New("bid placed, but the listing could not be refreshed")
	ErrRequestTimeout     = errors.New("request timed out, please retry")
	ErrLoginRequired      = errors.New("please log in to place a bid")
	ErrOwnListing         = errors.New("you cannot bid on your own listing")
)

// userFacing errors are shown with their own text instead of a generic message
var userFacing = []error{
	ErrAuctionEnded, ErrInvalidAmount, ErrBelowFloor, ErrMissingDates,
	ErrInvalidDateRange, ErrSubmissionInFlight, ErrPropertyNotFound,
	ErrRefreshFailed, ErrRequestTimeout, ErrLoginRequired, ErrOwnListing,
}

// APIError is a non-2xx answer from the API. Message holds the body's
// "error" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// IsValidation reports whether err is one of the client-side validation errors
func IsValidation(err error) bool {
	return errors.Is(err, ErrAuctionEnded) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrBelowFloor) ||
		errors.Is(err, ErrMissingDates) ||
		errors.Is(err, ErrInvalidDateRange)
}

// UserMessage returns the text shown to the user for err. A bid that was
// placed but not re-fetched always says so, with the API's message appended.
// Otherwise the API's own message wins, known errors speak for themselves and
// anything else falls back to the given generic message.
func UserMessage(err error, fallback error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	hasAPIMessage := errors.As(err, &apiErr) && apiErr.Message != ""
	if errors.Is(err, ErrRefreshFailed) {
		msg := capitalize(ErrRefreshFailed.Error())
		if hasAPIMessage {
			msg += ": " + apiErr.Message
		}
		return msg
	}
	if hasAPIMessage {
		return apiErr.Message
	}
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return capitalize(known.Error())
		}
	}
	return capitalize(fallback.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
