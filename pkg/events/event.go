package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published on the trolley event bus.
const (
	TypeItemAdded        = "LIST_ITEM_ADDED"
	TypeItemToggled      = "LIST_ITEM_TOGGLED"
	TypeItemRemoved      = "LIST_ITEM_REMOVED"
	TypeNavigationSet    = "NAVIGATION_STARTED"
	TypePaymentCompleted = "PAYMENT_COMPLETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "LIST_ITEM_ADDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used everywhere in this codebase.
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

// NewSessionEvent builds an event scoped to one shopping session.
func NewSessionEvent(eventType string, sessionId uuid.UUID, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = make(map[string]interface{})
	}
	data["session_id"] = sessionId.String()
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
