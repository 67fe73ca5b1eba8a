package interfaces

import (
	"context"
)

// Event is something that happened to a catalog entity.
type Event interface {
	// EventType returns the type of the event, e.g. "video.registered"
	EventType() string

	// Timestamp returns when the event occurred (unix seconds)
	Timestamp() int64

	// AggregateID returns the ID of the entity that produced the event
	AggregateID() string
}

// EventHandler handles events of a specific type.
type EventHandler interface {
	Handle(ctx context.Context, event Event) error

	// EventType returns the type of events this handler processes
	EventType() string
}

// EventPublisher is the publishing half of an EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// EventBus provides in-process pub/sub for domain events.
type EventBus interface {
	EventPublisher

	// PublishAsync publishes an event on a separate goroutine
	PublishAsync(ctx context.Context, event Event)

	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error

	Start(ctx context.Context) error

	// Stop waits for in-flight async publishes
	Stop() error
}
