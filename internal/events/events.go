package events

import (
	"ghostbust/internal/model"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events synchronously,
// in subscription order.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Unsubscribe(l Listener) {
	for i, existing := range em.listeners {
		if existing == l {
			em.listeners = append(em.listeners[:i], em.listeners[i+1:]...)
			return
		}
	}
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// ListenerFunc adapts a plain function to the Listener interface.
// Func values are not comparable, so a ListenerFunc cannot be unsubscribed.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// --- Session lifecycle ---

// ResetEvent is published once a session has a fresh board and a hidden ghost.
type ResetEvent struct {
	SessionID string
	Width     int
	Height    int
	Attempts  int
	Busts     int
}

// ProbeEvent carries the observation returned for one probe.
type ProbeEvent struct {
	SessionID         string
	Probe             model.Coord
	Color             model.Color
	Direction         model.Direction
	Revisit           bool
	AttemptsRemaining int
	Status            model.Status
}

// BustEvent carries the result of a committed guess.
type BustEvent struct {
	SessionID      string
	Target         model.Coord
	Outcome        model.Outcome
	BustsRemaining int
	Status         model.Status
}

// GameOverEvent is published on the transition to Won or Lost.
type GameOverEvent struct {
	SessionID string
	Status    model.Status
	Ghost     model.Coord
	Reason    string
}

// DegenerateDistributionEvent reports an update that was skipped because no
// probability mass survived it.
type DegenerateDistributionEvent struct {
	SessionID string
	Probe     model.Coord
	Color     model.Color
	Direction model.Direction
}
