// Package order contains the Order aggregate, the center of the bidding
// lifecycle. An order moves through a closed set of states:
//
//	open ──(window closes, no bids)──> no_offers
//	open ──(window closes, bids)────> awaiting_selection
//	awaiting_selection ──(winner assigned)──> in_progress
//	in_progress ──(both parties confirm)───> closed
//	in_progress ──(customer cancels)───────> cancelled
//	in_progress ──(carrier cancels)────────> awaiting_selection (winner cleared)
//	open ──(customer cancels)──────────────> cancelled
//
// no_offers, closed, and cancelled are terminal. Every transition is guarded
// by the Status state machine; any transition not listed for the current
// status fails with ErrInvalidTransition and leaves the aggregate untouched.
//
// The aggregate enforces the winner invariants: winner and winning price are
// set together or not at all, a winner exists exactly while the order is
// in_progress or closed, and confirmation flags can only be raised while a
// winner is assigned.
package order
