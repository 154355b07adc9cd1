package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderPlaced    = "OrderPlaced"
	EventOrderCancelled = "OrderCancelled"
	EventOrderDelivered = "OrderDelivered"
)

// OrderEvent is the envelope published after each order state transition.
// Publishing is best-effort; the engine never rolls back on publish failure.
type OrderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Order      Order     `json:"order"`
}

func NewOrderEvent(eventType string, o Order) OrderEvent {
	return OrderEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Order:      o,
	}
}
