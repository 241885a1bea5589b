// Package events defines the event contract shared by the NATS publisher
// and its consumers.
package events

import "time"

// Event is anything the service can put on the bus.
type Event interface {
	// EventType returns the event's unique code, e.g. "ASSISTANT_REPLY".
	EventType() string

	// Payload returns the event's data fields.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain value implementation used for all events this
// service emits.
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
