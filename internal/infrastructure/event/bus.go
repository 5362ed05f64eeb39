package event

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"go.uber.org/zap"
)

// InMemoryEventBus implements EventBus with in-process pub/sub routed by scope.
// Handlers run synchronously on the publishing goroutine.
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	running  atomic.Bool
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Publish delivers each event to the handlers of its scope.
// Every handler runs even when an earlier one fails; the failures are joined.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	var errs []error
	for _, event := range events {
		if _, err := b.Dispatch(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dispatch delivers one event and collects the outcome reported by each ResultHandler.
// Plain handlers that return no error count as processed.
func (b *InMemoryEventBus) Dispatch(ctx context.Context, event shared.DomainEvent) ([]shared.HandleResult, error) {
	handlers := b.registry.GetHandlers(event.Scope(), event.EventType())
	if len(handlers) == 0 {
		b.logger.Debug("no handler for event",
			zap.String("event_type", event.EventType()),
			zap.String("scope", event.Scope()),
		)
		return nil, nil
	}

	results := make([]shared.HandleResult, 0, len(handlers))
	var errs []error
	for _, handler := range handlers {
		result, err := b.dispatchToHandler(ctx, handler, event)
		if err != nil {
			b.logger.Error("handler failed to process event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.String("scope", event.Scope()),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		results = append(results, result)
	}
	return results, errors.Join(errs...)
}

// Subscribe registers an unscoped handler for specific event types
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	b.SubscribeScoped("", handler, eventTypes...)
}

// SubscribeScoped registers a handler that only receives events carrying scope
func (b *InMemoryEventBus) SubscribeScoped(scope string, handler shared.EventHandler, eventTypes ...string) {
	// If handler specifies its own event types, use those
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(scope, handler, eventTypes...)
	b.logger.Debug("handler subscribed",
		zap.String("scope", scope),
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed")
}

// Start starts the event bus
func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.running.Store(true)
	b.logger.Info("event bus started")
	return nil
}

// Stop stops the event bus gracefully
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.running.Store(false)
	b.logger.Info("event bus stopped")
	return nil
}

// IsRunning reports whether Start was called without a matching Stop
func (b *InMemoryEventBus) IsRunning() bool {
	return b.running.Load()
}

// dispatchToHandler runs one handler and turns a panic into an error
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (result shared.HandleResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("handler panicked on %s: %v", event.EventType(), r)
		}
	}()

	if rh, ok := handler.(shared.ResultHandler); ok {
		return rh.Process(ctx, event)
	}
	if err := handler.Handle(ctx, event); err != nil {
		return shared.HandleResult{}, err
	}
	return shared.Processed(), nil
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
