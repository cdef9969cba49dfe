package gesture

// Handler consumes a gesture event.
type Handler func(Event)

// Bus fans gesture events out to subscribers in subscription order.
// It belongs to the frame thread and is not safe for concurrent use.
type Bus struct {
	next     int
	handlers []subscription
}

type subscription struct {
	id      int
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns a function that removes it.
// The returned function may be called any number of times.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.next++
	id := b.next
	b.handlers = append(b.handlers, subscription{id: id, handler: h})

	return func() {
		for i, s := range b.handlers {
			if s.id == id {
				b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e synchronously to every current subscriber.
// Handlers that unsubscribe during delivery do not affect this event.
func (b *Bus) Publish(e Event) {
	if len(b.handlers) == 0 {
		return
	}
	snapshot := append([]subscription(nil), b.handlers...)
	for _, s := range snapshot {
		s.handler(e)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	return len(b.handlers)
}
