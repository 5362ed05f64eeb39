package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lampStatus string

const (
	lampOff    lampStatus = "off"
	lampOn     lampStatus = "on"
	lampBroken lampStatus = "broken"
)

func newLampTable() *TransitionTable[lampStatus] {
	return NewTransitionTable("lamp", map[lampStatus][]lampStatus{
		lampOff: {lampOn},
		lampOn:  {lampOff, lampBroken},
	})
}

func TestTransitionTable(t *testing.T) {
	table := newLampTable()

	t.Run("allows listed transitions only", func(t *testing.T) {
		assert.True(t, table.CanTransition(lampOff, lampOn))
		assert.True(t, table.CanTransition(lampOn, lampBroken))
		assert.False(t, table.CanTransition(lampOff, lampBroken))
		assert.False(t, table.CanTransition(lampBroken, lampOff))
	})

	t.Run("targets without outgoing edges are terminal", func(t *testing.T) {
		assert.True(t, table.IsKnown(lampBroken))
		assert.True(t, table.IsTerminal(lampBroken))
		assert.False(t, table.IsTerminal(lampOn))
	})

	t.Run("check reports attempted and allowed values", func(t *testing.T) {
		err := table.Check(lampOff, lampBroken)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))

		var de *DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "lamp", de.Details["entity_type"])
		assert.Equal(t, "off", de.Details["current"])
		assert.Equal(t, "broken", de.Details["attempted"])
		assert.Equal(t, []string{"on"}, de.Details["allowed"])
		assert.Contains(t, de.Message, "allowed: on")
	})

	t.Run("introspection", func(t *testing.T) {
		assert.Equal(t, "lamp", table.EntityType())
		assert.Equal(t, []string{"broken", "off", "on"}, table.States())

		allowed, err := table.AllowedFrom("on")
		require.NoError(t, err)
		assert.Equal(t, []string{"off", "broken"}, allowed)

		allowed, err = table.AllowedFrom("broken")
		require.NoError(t, err)
		assert.Empty(t, allowed)

		_, err = table.AllowedFrom("melted")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		allowed := table.Allowed(lampOn)
		allowed[0] = lampBroken
		assert.Equal(t, []lampStatus{lampOff, lampBroken}, table.Allowed(lampOn))
	})
}

func TestDomainErrors(t *testing.T) {
	t.Run("detailed errors match sentinels by code", func(t *testing.T) {
		assert.True(t, errors.Is(NewValidationError("rate", "bad"), ErrValidation))
		assert.True(t, errors.Is(NewNotFoundError("commission", "x"), ErrNotFound))
		assert.False(t, errors.Is(NewNotFoundError("commission", "x"), ErrValidation))
	})

	t.Run("cooldown carries days remaining", func(t *testing.T) {
		until := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		err := NewCooldownActiveError(until, 20)
		v, ok := err.Detail("days_remaining")
		require.True(t, ok)
		assert.Equal(t, 20, v)
	})

	t.Run("days remaining rounds up partial days", func(t *testing.T) {
		assert.Equal(t, 0, DaysRemaining(0))
		assert.Equal(t, 0, DaysRemaining(-time.Hour))
		assert.Equal(t, 1, DaysRemaining(time.Minute))
		assert.Equal(t, 20, DaysRemaining(20*24*time.Hour))
		assert.Equal(t, 21, DaysRemaining(20*24*time.Hour+time.Second))
	})

	t.Run("wrapped domain errors are still found", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), NewDuplicateConversionError("C1"))
		var de *DomainError
		require.True(t, errors.As(wrapped, &de))
		assert.Equal(t, CodeDuplicateConversion, de.Code)
	})
}
