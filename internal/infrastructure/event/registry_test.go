package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry_Register(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler("OrderCreated", "OrderUpdated")

	registry.Register("", handler, "OrderCreated", "OrderUpdated")

	assert.Len(t, registry.GetHandlers("", "OrderCreated"), 1)
	assert.Len(t, registry.GetHandlers("", "OrderUpdated"), 1)
	assert.Empty(t, registry.GetHandlers("", "OrderDeleted"))
	assert.Empty(t, registry.GetHandlers("ledger", "OrderCreated"))
}

func TestHandlerRegistry_TypedBeforeWildcard(t *testing.T) {
	registry := NewHandlerRegistry()
	wildcard := newTestHandler()
	typed := newTestHandler("payment.completed")

	registry.Register("ledger", wildcard)
	registry.Register("ledger", typed, "payment.completed")

	handlers := registry.GetHandlers("ledger", "payment.completed")
	assert.Len(t, handlers, 2)
	assert.Equal(t, typed, handlers[0])
	assert.Equal(t, wildcard, handlers[1])

	assert.Len(t, registry.GetHandlers("ledger", "payment.failed"), 1)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler()
	kept := newTestHandler()

	registry.Register("ledger", handler, "payment.completed")
	registry.Register("", handler)
	registry.Register("", kept, "payment.completed")

	registry.Unregister(handler)

	assert.Empty(t, registry.GetHandlers("ledger", "payment.completed"))
	assert.Equal(t, []string{""}, registry.Scopes())
	assert.Len(t, registry.GetHandlers("", "payment.completed"), 1)
}
