// Package live turns one-shot queries into streams that refresh whenever the
// table they read from is written. Writers call Hub.Notify after a commit;
// every open Stream on that table re-runs its query and delivers the result.
package live

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Hub fans out table-change signals to active subscribers.
type Hub struct {
	log *slog.Logger

	mu   sync.Mutex
	subs map[string]map[uuid.UUID]chan struct{}
}

// NewHub creates an empty Hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:  log.With("component", "live_hub"),
		subs: make(map[string]map[uuid.UUID]chan struct{}),
	}
}

// Notify signals every subscriber of table. It never blocks: a subscriber
// that already has a pending signal keeps just that one.
func (h *Hub) Notify(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions on table.
func (h *Hub) Subscribers(table string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[table])
}

// subscribe registers a new signal channel for table.
func (h *Hub) subscribe(table string) (uuid.UUID, <-chan struct{}) {
	id := uuid.New()
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	set, ok := h.subs[table]
	if !ok {
		set = make(map[uuid.UUID]chan struct{})
		h.subs[table] = set
	}
	set[id] = ch
	h.mu.Unlock()

	h.log.Debug("subscribed", slog.String("table", table), slog.String("subscription_id", id.String()))
	return id, ch
}

// unsubscribe removes the subscription. Unknown ids are ignored.
func (h *Hub) unsubscribe(table string, id uuid.UUID) {
	h.mu.Lock()
	if set, ok := h.subs[table]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(h.subs, table)
		}
	}
	h.mu.Unlock()

	h.log.Debug("unsubscribed", slog.String("table", table), slog.String("subscription_id", id.String()))
}
