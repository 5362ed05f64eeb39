package shared

import "context"

// EventHandler handles domain events
type EventHandler interface {
	// Handle processes a domain event
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes returns the event types this handler is interested in
	// An empty slice means the handler receives all events of its scope
	EventTypes() []string
}

// EventPublisher publishes domain events
type EventPublisher interface {
	// Publish publishes one or more domain events
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber subscribes to domain events
type EventSubscriber interface {
	// Subscribe registers an unscoped handler for specific event types
	Subscribe(handler EventHandler, eventTypes ...string)
	// SubscribeScoped registers a handler that only receives events carrying scope
	SubscribeScoped(scope string, handler EventHandler, eventTypes ...string)
	// Unsubscribe removes a handler from every scope
	Unsubscribe(handler EventHandler)
}

// EventBus combines publisher and subscriber capabilities
type EventBus interface {
	EventPublisher
	EventSubscriber
	// Start starts the event bus (e.g., background processing)
	Start(ctx context.Context) error
	// Stop gracefully stops the event bus
	Stop(ctx context.Context) error
}

// HandleOutcome classifies what a handler did with an event
type HandleOutcome string

const (
	OutcomeProcessed HandleOutcome = "processed"
	// OutcomeSkipped means the event was already applied and nothing changed
	OutcomeSkipped HandleOutcome = "skipped"
	// OutcomeFailed means the event cannot be applied to the current state.
	// It is a business result, not an error, and is not retried.
	OutcomeFailed HandleOutcome = "failed"
)

// HandleResult is the outcome of processing one event
type HandleResult struct {
	Outcome HandleOutcome `json:"outcome"`
	Reason  string        `json:"reason,omitempty"`
}

// Processed returns a processed result
func Processed() HandleResult {
	return HandleResult{Outcome: OutcomeProcessed}
}

// Skipped returns a skipped result with a reason
func Skipped(reason string) HandleResult {
	return HandleResult{Outcome: OutcomeSkipped, Reason: reason}
}

// Failed returns a failed result with a reason
func Failed(reason string) HandleResult {
	return HandleResult{Outcome: OutcomeFailed, Reason: reason}
}

// ResultHandler is an event handler that reports the outcome of each event
type ResultHandler interface {
	EventHandler
	Process(ctx context.Context, event DomainEvent) (HandleResult, error)
}

// Deduplicatable events carry their own redelivery identity
type Deduplicatable interface {
	DedupKey() string
}
