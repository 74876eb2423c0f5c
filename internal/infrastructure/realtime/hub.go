// Package realtime fans committed ticket messages out to websocket
// subscribers watching a thread.
package realtime

import (
	"sync"

	"lumistream/internal/shared/logger"
)

// Hub tracks which clients watch which ticket thread. A client subscribes
// to exactly one ticket for its lifetime; closing the connection removes it.
type Hub struct {
	logger logger.Interface

	mu          sync.RWMutex
	subscribers map[uint]map[*Client]bool
}

func NewHub(logger logger.Interface) *Hub {
	return &Hub{
		logger:      logger,
		subscribers: make(map[uint]map[*Client]bool),
	}
}

func (h *Hub) Subscribe(ticketID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.subscribers[ticketID]
	if !ok {
		clients = make(map[*Client]bool)
		h.subscribers[ticketID] = clients
	}
	clients[c] = true

	h.logger.Debugw("websocket client subscribed", "ticket_id", ticketID, "clients", len(clients))
}

func (h *Hub) Unsubscribe(ticketID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.subscribers[ticketID]
	if !ok {
		return
	}

	if clients[c] {
		delete(clients, c)
		c.close()
	}
	if len(clients) == 0 {
		delete(h.subscribers, ticketID)
	}
}

// Broadcast delivers the payload to every subscriber of the ticket. Clients
// with a full outbox are dropped rather than allowed to stall the rest.
func (h *Hub) Broadcast(ticketID uint, payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.subscribers[ticketID]))
	for c := range h.subscribers[ticketID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(payload) {
			h.logger.Warnw("dropping slow websocket client", "ticket_id", ticketID)
			h.Unsubscribe(ticketID, c)
		}
	}
}

// SubscriberCount reports how many clients watch the ticket.
func (h *Hub) SubscriberCount(ticketID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[ticketID])
}
