package negotiationerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrThreadNotFound = errors.New("thread not found")
	ErrNoBids         = errors.New("no bids found for item")
	ErrNoThreads      = errors.New("user has no threads")
	ErrUserNoBids     = errors.New("user has not placed any bids")

	// ErrConcurrentUpdate signals a lost compare-and-swap race on an
	// item's highest-bid projection. Callers re-validate and retry.
	ErrConcurrentUpdate = errors.New("concurrent update detected")
)

// Business logic errors
var (
	ErrInvalidInput    = errors.New("invalid request input")
	ErrInvalidAmount   = errors.New("bid amount must be positive")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrBiddingDisabled = errors.New("bidding is not enabled for item")
	ErrBiddingClosed   = errors.New("bidding deadline has passed")
	ErrEmptyMessage    = errors.New("message body is empty")
	ErrOwnListing      = errors.New("seller cannot negotiate on own item")
	ErrNotAParticipant = errors.New("user is not a thread participant")
	ErrThreadClosed    = errors.New("thread is closed")
)

// BidTooLowError carries the minimum acceptable amount so the caller can
// correct and retry. It matches ErrBidTooLow under errors.Is.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: minimum acceptable bid is %.2f", e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}
