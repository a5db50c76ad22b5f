package registry

import (
	"slices"

	"kilometers.ai/sched/internal/core/event"
)

// Registry is the append-only, insertion-ordered store of accepted events.
// It performs no validation; callers run the conflict chain first.
type Registry struct {
	events []event.Event
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Append adds evt after every previously accepted event
func (r *Registry) Append(evt event.Event) {
	r.events = append(r.events, evt)
}

// Snapshot returns the events in acceptance order. The slice is a copy;
// changing it does not affect the registry.
func (r *Registry) Snapshot() []event.Event {
	return slices.Clone(r.events)
}

// Len returns the number of accepted events
func (r *Registry) Len() int {
	return len(r.events)
}
