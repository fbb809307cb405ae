// Package event provides a small synchronous event dispatcher.
//
// Services fire named events after they persist a change; listeners keep
// derived state (metrics, cached counts, logs) in step without the services
// knowing about them.
package event

import (
	"sync"
)

// Event names fired by the store.
const (
	CartUpdated   = "cart.updated"
	UserSignedUp  = "user.signed_up"
	UserSignedIn  = "user.signed_in"
	SignInFailed  = "user.sign_in_failed"
	UserSignedOut = "user.signed_out"
	OrderPlaced   = "order.placed"
	PaymentFailed = "payment.failed"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

// Dispatcher routes fired events to their listeners.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New returns an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order. A nil Dispatcher drops the event.
func (d *Dispatcher) Fire(event string, payload interface{}) {
	if d == nil {
		return
	}

	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[event]))
	copy(hs, d.handlers[event])
	d.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[string][]Handler{}
}
