// internal/pkg/authstate/watcher.go
package authstate

import "sync"

// EventType of a session-state change.
type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

// Event describes one session-state change.
type Event struct {
	Type   EventType
	UserID string
	Email  string
}

// Watcher is the injected replacement for ambient global auth state: the
// application root owns one instance for its whole lifetime, services publish
// session changes into it, and interested parties subscribe explicitly.
type Watcher struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener and returns its event channel together with
// an unsubscribe func. Unsubscribing closes the channel.
func (w *Watcher) Subscribe() (<-chan Event, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	ch := make(chan Event, 8)
	w.subs[id] = ch

	unsubscribe := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish fans an event out to every subscriber. A subscriber that stopped
// draining its channel misses events rather than blocking the publisher.
func (w *Watcher) Publish(e Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
