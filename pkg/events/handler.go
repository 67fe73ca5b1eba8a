package events

import (
	"context"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// HandlerFunc adapts a function to interfaces.EventHandler.
type HandlerFunc struct {
	eventType string
	fn        func(ctx context.Context, event interfaces.Event) error
}

// NewHandlerFunc creates an EventHandler named eventType that calls fn.
func NewHandlerFunc(eventType string, fn func(ctx context.Context, event interfaces.Event) error) *HandlerFunc {
	return &HandlerFunc{eventType: eventType, fn: fn}
}

// Handle calls the wrapped function
func (h *HandlerFunc) Handle(ctx context.Context, event interfaces.Event) error {
	return h.fn(ctx, event)
}

// EventType returns the handler's event type
func (h *HandlerFunc) EventType() string {
	return h.eventType
}

// NewLoggingHandler returns a handler that logs every event it receives.
func NewLoggingHandler(log interfaces.Logger) *HandlerFunc {
	return NewHandlerFunc(WildcardEventType, func(ctx context.Context, event interfaces.Event) error {
		log.Info("Event published",
			interfaces.String("event_type", event.EventType()),
			interfaces.String("aggregate_id", event.AggregateID()))
		return nil
	})
}
