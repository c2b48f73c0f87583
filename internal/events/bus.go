// Package events carries resource-change notifications between
// containers without compile-time coupling. Containers publish after a
// successful mutation; the refresh coordinator subscribes and decides
// which dependent caches to re-fetch.
package events

import "sync"

// Resource names the entity kind a change applies to.
type Resource string

const (
	ResourceJourney Resource = "journey"
	ResourceVehicle Resource = "vehicle"
	ResourceUser    Resource = "user"
)

// Action names what happened to the resource.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionStarted Action = "started"
	ActionEnded   Action = "ended"
)

// CountAffecting reports whether the action changes a resource count a
// demo quota is measured against.
func (a Action) CountAffecting() bool {
	switch a {
	case ActionCreated, ActionDeleted, ActionStarted:
		return true
	}
	return false
}

// Change is one published mutation.
type Change struct {
	Resource Resource
	Action   Action
}

// Bus dispatches changes synchronously to all subscribers, in
// subscription order. Publish runs handlers on the caller's goroutine;
// the cooperative single-writer model needs no buffering.
type Bus struct {
	mu       sync.RWMutex
	handlers []func(Change)
}

// Subscribe registers a handler for every future change.
func (b *Bus) Subscribe(handler func(Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers change to all subscribers.
func (b *Bus) Publish(change Change) {
	b.mu.RLock()
	handlers := make([]func(Change), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(change)
	}
}
