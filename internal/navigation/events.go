// Package navigation models route-change lifecycle signals and the progress
// indicator that observes them.
package navigation

import "sync"

// Signal names a navigation lifecycle phase.
type Signal string

const (
	RouteChangeStart    Signal = "routeChangeStart"
	RouteChangeComplete Signal = "routeChangeComplete"
	RouteChangeError    Signal = "routeChangeError"
)

// Signals lists every lifecycle signal in emission order.
var Signals = []Signal{RouteChangeStart, RouteChangeComplete, RouteChangeError}

// Handler observes one signal. path is the route being navigated to.
type Handler func(path string)

// Events is a lifecycle emitter. Observers register per signal and are
// removed through the Subscription returned at registration.
type Events struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[Signal]map[uint64]Handler
}

// NewEvents returns an emitter with no observers.
func NewEvents() *Events {
	return &Events{handlers: make(map[Signal]map[uint64]Handler)}
}

// Subscription identifies one registered observer.
type Subscription struct {
	events *Events
	signal Signal
	id     uint64
}

// On registers h for signal.
func (e *Events) On(signal Signal, h Handler) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	byID, ok := e.handlers[signal]
	if !ok {
		byID = make(map[uint64]Handler)
		e.handlers[signal] = byID
	}
	byID[e.nextID] = h
	return Subscription{events: e, signal: signal, id: e.nextID}
}

// Off removes the observer. Removing twice is harmless.
func (s Subscription) Off() {
	if s.events == nil {
		return
	}
	s.events.mu.Lock()
	defer s.events.mu.Unlock()
	delete(s.events.handlers[s.signal], s.id)
}

// Emit calls every observer of signal. Observers run outside the emitter lock,
// so they may subscribe or unsubscribe.
func (e *Events) Emit(signal Signal, path string) {
	e.mu.RLock()
	byID := e.handlers[signal]
	handlers := make([]Handler, 0, len(byID))
	for _, h := range byID {
		handlers = append(handlers, h)
	}
	e.mu.RUnlock()

	for _, h := range handlers {
		h(path)
	}
}

// Observers reports how many observers are registered for signal.
func (e *Events) Observers(signal Signal) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[signal])
}
