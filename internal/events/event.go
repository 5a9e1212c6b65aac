package events

import "time"

// Event defines the contract for all store events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CART_ITEM_ADDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by the domain stores. Mirrors the topics the
// backend's event services publish so analytics stay comparable.
const (
	WishlistItemAdded    = "WISHLIST_ITEM_ADDED"
	WishlistItemRemoved  = "WISHLIST_ITEM_REMOVED"
	CartItemAdded        = "CART_ITEM_ADDED"
	CartItemRemoved      = "CART_ITEM_REMOVED"
	CartItemUpdated      = "CART_ITEM_UPDATED"
	CustomOrderSubmitted = "CUSTOM_ORDER_SUBMITTED"
)
