package sync

// Hub fans change notices out to subscribed clients. There is a single
// topic: the board. Subscribers that cannot keep up are dropped rather
// than ever blocking the broadcast loop.
type Hub struct {
	subscribers map[*Subscription]bool
	register    chan *Subscription
	unregister  chan *Subscription
	broadcast   chan ChangeNotice
}

// Subscription is a cancellable handle on the change feed.
type Subscription struct {
	C   chan ChangeNotice
	hub *Hub
}

// Cancel detaches the subscription; its channel is closed by the hub.
func (s *Subscription) Cancel() {
	s.hub.unregister <- s
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscription]bool),
		register:    make(chan *Subscription),
		unregister:  make(chan *Subscription),
		broadcast:   make(chan ChangeNotice),
	}
}

// Run processes register/unregister/broadcast events. Must run in its own
// goroutine; use Start.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.subscribers[sub] = true

		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.C)
			}

		case notice := <-h.broadcast:
			for sub := range h.subscribers {
				select {
				case sub.C <- notice:
				default:
					delete(h.subscribers, sub)
					close(sub.C)
				}
			}
		}
	}
}

// Start launches the broadcast loop.
func (h *Hub) Start() {
	go h.Run()
}

// Subscribe registers a new change feed subscription.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		C:   make(chan ChangeNotice, 8),
		hub: h,
	}
	h.register <- sub
	return sub
}

// Broadcast delivers a change notice to every live subscriber.
func (h *Hub) Broadcast(notice ChangeNotice) {
	h.broadcast <- notice
}
