// Package hub is the thin, in-process stand-in for the broadcast hub: a
// real deployment fans these events out over a network protocol to
// connected clients, which is out of scope here. What lives in this
// package is only the shape of what the Ingestion Supervisor and the
// Layout Projector submit, and a minimal multi-subscriber fanout adapted
// from codeNERD's Glass Box event bus (internal/transparency/event_bus.go)
// with the batching window dropped: a decayed snapshot or layout result is
// not latency-sensitive UI chatter, it is already the settled output of a
// rebuild or a projection run.
package hub

import (
	"context"
	"sync"

	"github.com/kittclouds/memcity/internal/layout"
	"github.com/kittclouds/memcity/internal/snapshot"
)

// Kind tags which payload an Event carries.
type Kind string

const (
	KindSnapshot Kind = "snapshot"
	KindLayout   Kind = "layout"
)

// Event is one typed submission to the hub.
type Event struct {
	Kind     Kind
	Snapshot *snapshot.Snapshot
	Layout   *layout.Result
}

// Hub fans out Events to any number of subscribers. A slow subscriber
// never blocks a publish: its channel is dropped from, not blocked on.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// New returns an empty Hub ready to accept subscribers and publishes.
func New() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Subscribe registers a new buffered channel and returns the read side.
// Call Unsubscribe with the same value to stop receiving and release it.
func (h *Hub) Subscribe() <-chan Event {
	ch := make(chan Event, 8)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a channel previously returned by
// Subscribe. It is a no-op if ch is not currently registered.
func (h *Hub) Unsubscribe(ch <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		if sub == ch {
			delete(h.subscribers, sub)
			close(sub)
			return
		}
	}
}

// Publish delivers e to every current subscriber, dropping it for any
// subscriber whose buffer is full rather than blocking the caller.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub <- e:
		default:
		}
	}
}

// Close closes every subscriber channel and clears the subscriber set.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		close(sub)
	}
	h.subscribers = make(map[chan Event]struct{})
}

// PumpSnapshots republishes every snapshot received on in as a hub Event,
// until ctx is cancelled or in is closed. The Ingestion Supervisor's
// output channel is the natural source: this is the "submitting typed
// events to the hub" side of the boundary.
func (h *Hub) PumpSnapshots(ctx context.Context, in <-chan *snapshot.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-in:
			if !ok {
				return
			}
			h.Publish(Event{Kind: KindSnapshot, Snapshot: snap})
		}
	}
}
