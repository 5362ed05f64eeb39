package event

import (
	"sync"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
)

// HandlerRegistry manages event handler registrations per routing scope.
// The empty scope holds handlers subscribed without a scope.
type HandlerRegistry struct {
	mu     sync.RWMutex
	scopes map[string]*scopeHandlers
}

type scopeHandlers struct {
	byType   map[string][]shared.EventHandler // eventType -> handlers
	wildcard []shared.EventHandler            // handlers for every event of the scope
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		scopes: make(map[string]*scopeHandlers),
	}
}

// Register adds a handler to scope for specific event types.
// If no event types are provided, the handler receives all events of the scope.
func (r *HandlerRegistry) Register(scope string, handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.scopes[scope]
	if !ok {
		s = &scopeHandlers{byType: make(map[string][]shared.EventHandler)}
		r.scopes[scope] = s
	}

	if len(eventTypes) == 0 {
		s.wildcard = append(s.wildcard, handler)
		return
	}
	for _, eventType := range eventTypes {
		s.byType[eventType] = append(s.byType[eventType], handler)
	}
}

// Unregister removes a handler from every scope and event type
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for scope, s := range r.scopes {
		s.wildcard = removeHandler(s.wildcard, handler)
		for eventType, handlers := range s.byType {
			s.byType[eventType] = removeHandler(handlers, handler)
			if len(s.byType[eventType]) == 0 {
				delete(s.byType, eventType)
			}
		}
		if len(s.wildcard) == 0 && len(s.byType) == 0 {
			delete(r.scopes, scope)
		}
	}
}

// GetHandlers returns the handlers registered in scope for eventType, type-specific first.
// Handlers of other scopes are never returned.
func (r *HandlerRegistry) GetHandlers(scope, eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scopes[scope]
	if !ok {
		return nil
	}
	typeHandlers := s.byType[eventType]
	result := make([]shared.EventHandler, 0, len(typeHandlers)+len(s.wildcard))
	result = append(result, typeHandlers...)
	result = append(result, s.wildcard...)
	return result
}

// Scopes returns the scopes that currently have handlers
func (r *HandlerRegistry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.scopes))
	for scope := range r.scopes {
		out = append(out, scope)
	}
	return out
}

// removeHandler removes a handler from a slice of handlers
func removeHandler(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := make([]shared.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}
