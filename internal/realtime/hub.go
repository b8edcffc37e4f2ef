package realtime

import (
	"sync"
)

const EventPostsChanged = "posts.changed"

type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// Hub fans events out to stream clients. A client that falls behind by more
// than its buffer misses events rather than stalling the broadcaster.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	buffer  int
	closed  bool
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{clients: map[*Client]struct{}{}, buffer: buffer}
}

type Client struct {
	hub    *Hub
	events chan Event
	once   sync.Once
}

// Subscribe registers a client. On a closed hub the client's channel is
// already closed.
func (h *Hub) Subscribe() *Client {
	c := &Client{hub: h, events: make(chan Event, h.buffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		c.once.Do(func() { close(c.events) })
		return c
	}
	h.clients[c] = struct{}{}
	return c
}

func (c *Client) Events() <-chan Event { return c.events }

// Close detaches the client. Safe to call more than once.
func (c *Client) Close() {
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()
	c.detachLocked()
}

func (c *Client) detachLocked() {
	c.once.Do(func() {
		delete(c.hub.clients, c)
		close(c.events)
	})
}

// Broadcast returns how many clients accepted the event.
func (h *Hub) Broadcast(e Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for c := range h.clients {
		select {
		case c.events <- e:
			n++
		default:
		}
	}
	return n
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close detaches every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		c.detachLocked()
	}
}
