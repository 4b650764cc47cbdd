// Package hub maintains the set of live admin notification channels and
// fans events out to all of them, best effort.
package hub

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrFull is returned by Register when the registry is at capacity.
var ErrFull = errors.New("hub: connection registry full")

// Conn is one live delivery path to a connected admin client. The
// websocket handler owns the underlying transport; the hub only writes.
type Conn interface {
	WriteJSON(v any) error
}

// Event is the wire shape pushed to every registered connection.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub is a mutex-guarded registry of live connections. Broadcast never
// fails its caller: connections that error are collected during the
// sweep and evicted after it, so a dead channel sees at most the
// in-flight delivery attempt before removal.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]struct{}
	max   int
	log   *zap.Logger

	broadcasts uint64
}

// New creates a Hub bounded at max connections. A max of zero or less
// means 256.
func New(max int, log *zap.Logger) *Hub {
	if max <= 0 {
		max = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		conns: make(map[Conn]struct{}),
		max:   max,
		log:   log,
	}
}

// Register adds a connection to the live set. It fails only when the
// registry is at capacity.
func (h *Hub) Register(c Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.conns) >= h.max {
		return ErrFull
	}
	h.conns[c] = struct{}{}
	return nil
}

// Unregister removes a connection. Removing an absent connection is a no-op.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Len reports the number of live connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast delivers {event, data} to every registered connection.
// Writes happen outside the registry lock against a snapshot, so
// concurrent register/unregister calls never corrupt iteration. A
// failed write marks the connection for eviction; eviction is deferred
// until the sweep completes. Broadcast never returns an error.
func (h *Hub) Broadcast(event string, data any) {
	h.mu.Lock()
	snapshot := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		snapshot = append(snapshot, c)
	}
	h.broadcasts++
	h.mu.Unlock()

	msg := Event{Event: event, Data: data}

	var stale []Conn
	for _, c := range snapshot {
		if err := c.WriteJSON(msg); err != nil {
			h.log.Debug("hub delivery failed, evicting connection",
				zap.String("event", event),
				zap.Error(err),
			)
			stale = append(stale, c)
		}
	}

	if len(stale) > 0 {
		h.mu.Lock()
		for _, c := range stale {
			delete(h.conns, c)
		}
		h.mu.Unlock()
	}
}

// Broadcasts reports how many broadcasts have run since startup.
func (h *Hub) Broadcasts() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.broadcasts
}
