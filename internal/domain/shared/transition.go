package shared

import (
	"fmt"
	"sort"
)

// TransitionTable is a static allowed-transition table for one guarded entity kind.
// Every status machine in the system is an instance of it, so the check and the
// introspection logic exist exactly once.
type TransitionTable[S ~string] struct {
	entityType string
	edges      map[S][]S
	order      []S
}

// NewTransitionTable builds a table. States listed only as targets are treated as terminal.
func NewTransitionTable[S ~string](entityType string, edges map[S][]S) *TransitionTable[S] {
	t := &TransitionTable[S]{
		entityType: entityType,
		edges:      make(map[S][]S, len(edges)),
	}
	seen := make(map[S]bool)
	add := func(s S) {
		if !seen[s] {
			seen[s] = true
			t.order = append(t.order, s)
		}
	}
	for from, tos := range edges {
		t.edges[from] = append([]S(nil), tos...)
		add(from)
		for _, to := range tos {
			add(to)
		}
	}
	sort.Slice(t.order, func(i, j int) bool { return t.order[i] < t.order[j] })
	return t
}

// EntityType returns the entity kind this table guards
func (t *TransitionTable[S]) EntityType() string {
	return t.entityType
}

// Allowed returns the statuses reachable from the given status
func (t *TransitionTable[S]) Allowed(from S) []S {
	return append([]S(nil), t.edges[from]...)
}

// CanTransition reports whether from -> to is in the table
func (t *TransitionTable[S]) CanTransition(from, to S) bool {
	for _, s := range t.edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions
func (t *TransitionTable[S]) IsTerminal(s S) bool {
	return len(t.edges[s]) == 0
}

// IsKnown reports whether the status appears anywhere in the table
func (t *TransitionTable[S]) IsKnown(s S) bool {
	for _, known := range t.order {
		if known == s {
			return true
		}
	}
	return false
}

// Check returns an InvalidTransition error unless from -> to is allowed
func (t *TransitionTable[S]) Check(from, to S) error {
	if t.CanTransition(from, to) {
		return nil
	}
	return NewInvalidTransitionError(t.entityType, string(from), string(to), toStrings(t.edges[from]))
}

// States lists every status of the table in a stable order
func (t *TransitionTable[S]) States() []string {
	return toStrings(t.order)
}

// AllowedFrom is the string form of Allowed used by read APIs
func (t *TransitionTable[S]) AllowedFrom(status string) ([]string, error) {
	s := S(status)
	if !t.IsKnown(s) {
		return nil, NewValidationError("status", fmt.Sprintf("unknown %s status %q", t.entityType, status))
	}
	return toStrings(t.edges[s]), nil
}

// TransitionIntrospector exposes a transition table without its status type
type TransitionIntrospector interface {
	EntityType() string
	States() []string
	AllowedFrom(status string) ([]string, error)
}

func toStrings[S ~string](in []S) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}
