// Package events defines the notification facts produced by order lifecycle
// transitions. Events are immutable values handed to an outbound publisher
// after the owning transition has committed; delivery (bot message, webhook)
// is an external concern.
package events

import (
	"freighthub/internal/core/domain/model/kernel"
)

// Kind identifies what happened to an order.
type Kind string

// The complete set of notification kinds a transition can produce.
const (
	// NewOrderOpened goes to every carrier eligible for the order's truck type.
	NewOrderOpened Kind = "new_order_opened"

	// NoBids goes to the customer when the window closes without offers.
	NoBids Kind = "no_bids"

	// SelectionRequired goes to the customer when the window closes with bids
	// and a winner must be chosen manually.
	SelectionRequired Kind = "selection_required"

	// WinnerSelected goes to the winning carrier and the customer, carrying
	// counterparty contact data.
	WinnerSelected Kind = "winner_selected"

	// NotSelected goes to every bidder that did not win.
	NotSelected Kind = "not_selected"

	// PartyConfirmed goes to the other party when one side confirms completion.
	PartyConfirmed Kind = "party_confirmed"

	// OrderClosed goes to both parties on joint confirmation.
	OrderClosed Kind = "order_closed"

	// OrderCancelled goes to the counterparty of whoever cancelled.
	OrderCancelled Kind = "order_cancelled"

	// OrderReopened goes to the customer when the assigned carrier cancels
	// and selection becomes available again.
	OrderReopened Kind = "order_reopened"
)

// Payload keys shared between producers and renderers.
const (
	PayloadCargo         = "cargo"
	PayloadTruckType     = "truck_type"
	PayloadAddress       = "delivery_address"
	PayloadPrice         = "price"
	PayloadConfirmedBy   = "confirmed_by"
	PayloadCancelledBy   = "cancelled_by"
	PayloadCancelReason  = "cancel_reason"
	PayloadCustomerPhone = "customer_phone"
	PayloadCarrierPhone  = "carrier_phone"
)

// NotificationEvent is an immutable fact produced by a state transition.
// Recipients are participant identities; Payload carries display data so the
// delivery layer needs no further lookups.
type NotificationEvent struct {
	Kind       Kind
	OrderID    kernel.UUID
	Recipients []kernel.UUID
	Payload    map[string]string
}

// NewNotificationEvent builds an event for the given recipients.
// A nil payload is normalized to an empty map.
func NewNotificationEvent(
	kind Kind,
	orderID kernel.UUID,
	recipients []kernel.UUID,
	payload map[string]string,
) NotificationEvent {
	if payload == nil {
		payload = map[string]string{}
	}
	return NotificationEvent{
		Kind:       kind,
		OrderID:    orderID,
		Recipients: recipients,
		Payload:    payload,
	}
}
