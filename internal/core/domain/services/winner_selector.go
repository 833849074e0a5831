// Package services contains stateless domain services coordinating multiple
// aggregates. WinnerSelector implements the automatic selection policy used
// when a bidding window closes.
package services

import (
	"errors"

	"freighthub/internal/core/domain/model/bid"
)

// ErrNoBids is returned when automatic selection runs against an empty bid list.
var ErrNoBids = errors.New("no bids to select from")

// WinnerSelector picks the winning bid for an order.
//
// Selection rules:
//   - lowest price wins
//   - equal prices are broken by earliest original submission time
//     (price updates keep the original submission time, so lowering a price
//     late does not steal first-come priority at the same amount)
type WinnerSelector struct{}

// NewWinnerSelector creates a WinnerSelector.
func NewWinnerSelector() WinnerSelector {
	return WinnerSelector{}
}

// Select returns the winning bid among the given bids.
// All bids must be valid and belong to the same order; the caller guarantees
// the latter by fetching them from the ledger.
// Returns ErrNoBids when the list is empty.
func (WinnerSelector) Select(bids []*bid.Bid) (*bid.Bid, error) {
	if len(bids) == 0 {
		return nil, ErrNoBids
	}

	var best *bid.Bid
	for _, b := range bids {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if best == nil || isBetter(b, best) {
			best = b
		}
	}
	return best, nil
}

func isBetter(candidate, current *bid.Bid) bool {
	if candidate.Price().IsLess(current.Price()) {
		return true
	}
	if current.Price().IsLess(candidate.Price()) {
		return false
	}
	return candidate.SubmittedAt().Before(current.SubmittedAt())
}
