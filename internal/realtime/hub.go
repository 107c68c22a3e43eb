package realtime

import (
	"errors"
	"sync"

	"tracking/internal/core/domain/model/kernel"
)

// ErrHubClosed is returned by Subscribe after Close.
var ErrHubClosed = errors.New("hub is closed")

// Subscriber receives events for the orders it is subscribed to. Offer must
// not block: a slow subscriber drops events instead of stalling the hub.
type Subscriber interface {
	// ID identifies the subscriber (one ID per connection).
	ID() string

	// Offer hands an event to the subscriber without blocking. The return
	// value reports whether the subscriber accepted it.
	Offer(event Event) bool
}

// Hub fans events out to subscribers grouped by order. Subscriptions are
// keyed by (orderID, subscriberID), so subscribing twice is a no-op and one
// connection can follow many orders at once.
//
// Publish holds the order's group lock while offering to every subscriber,
// which serializes deliveries per order: two events published for the same
// order reach each subscriber in publish order.
type Hub struct {
	mu     sync.RWMutex
	closed bool
	// groups maps an order ID to its subscriber set.
	groups map[kernel.UUID]*group
	// orders maps a subscriber ID back to every order it follows,
	// so DropSubscriber need not scan all groups.
	orders map[string]map[kernel.UUID]struct{}
}

type group struct {
	mu          sync.Mutex
	subscribers map[string]Subscriber
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		groups: make(map[kernel.UUID]*group),
		orders: make(map[string]map[kernel.UUID]struct{}),
	}
}

// Subscribe adds the subscriber to the order's group. Subscribing an already
// subscribed (orderID, subscriber) pair is idempotent.
func (h *Hub) Subscribe(orderID kernel.UUID, subscriber Subscriber) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	g, ok := h.groups[orderID]
	if !ok {
		g = &group{subscribers: make(map[string]Subscriber)}
		h.groups[orderID] = g
	}
	followed, ok := h.orders[subscriber.ID()]
	if !ok {
		followed = make(map[kernel.UUID]struct{})
		h.orders[subscriber.ID()] = followed
	}
	followed[orderID] = struct{}{}
	h.mu.Unlock()

	g.mu.Lock()
	g.subscribers[subscriber.ID()] = subscriber
	g.mu.Unlock()

	return nil
}

// Unsubscribe removes the subscriber from the order's group. Unsubscribing a
// pair that was never subscribed is a no-op.
func (h *Hub) Unsubscribe(orderID kernel.UUID, subscriberID string) {
	h.mu.Lock()
	g, ok := h.groups[orderID]
	if followed, ok := h.orders[subscriberID]; ok {
		delete(followed, orderID)
		if len(followed) == 0 {
			delete(h.orders, subscriberID)
		}
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	g.mu.Lock()
	delete(g.subscribers, subscriberID)
	g.mu.Unlock()
}

// DropSubscriber removes the subscriber from every group it joined. Called
// when a connection closes.
func (h *Hub) DropSubscriber(subscriberID string) {
	h.mu.Lock()
	followed := h.orders[subscriberID]
	delete(h.orders, subscriberID)
	groups := make([]*group, 0, len(followed))
	for orderID := range followed {
		if g, ok := h.groups[orderID]; ok {
			groups = append(groups, g)
		}
	}
	h.mu.Unlock()

	for _, g := range groups {
		g.mu.Lock()
		delete(g.subscribers, subscriberID)
		g.mu.Unlock()
	}
}

// Publish offers the event to every subscriber of its order. Subscribers of
// other orders never see it. Publishing to an order without subscribers is
// a no-op.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	g, ok := h.groups[event.OrderID()]
	h.mu.RUnlock()

	if !ok {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, subscriber := range g.subscribers {
		subscriber.Offer(event)
	}
}

// Close drops every subscription and rejects further subscribes. Events
// published after Close are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.groups = make(map[kernel.UUID]*group)
	h.orders = make(map[string]map[kernel.UUID]struct{})
}
