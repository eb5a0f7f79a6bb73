package events

import (
	"context"
	"encoding/json"
	"time"
)

const (
	UserSignedIn       = "USER_SIGNED_IN"
	UserSignedOut      = "USER_SIGNED_OUT"
	UserSetupCompleted = "USER_SETUP_COMPLETED"
	MemoryCreated      = "MEMORY_CREATED"
	MemoryUpdated      = "MEMORY_UPDATED"
	MemoryDeleted      = "MEMORY_DELETED"
)

// Event is anything that can be published on the activity stream.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// Publisher delivers events. Callers treat delivery as best effort.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
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

// NewUserEvent stamps an event about userId with the current time.
func NewUserEvent(eventType, userId string, data map[string]interface{}) BaseEvent {
	payload := map[string]interface{}{"userId": userId}
	for k, v := range data {
		payload[k] = v
	}
	return BaseEvent{Type: eventType, Data: payload, OccurredAt: time.Now().UTC()}
}

// Encode produces the wire form shared by every transport.
func Encode(event Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
}

func Decode(raw []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(raw, &e)
	return e, err
}

// Fanout publishes to every target and returns the first failure after
// trying them all.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var firstErr error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
