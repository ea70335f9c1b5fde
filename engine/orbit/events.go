package orbit

// Event is a queued input event
type Event struct {
	Type  EventType
	X, Y  float64 // pointer position in screen pixels
	Value float64 // zoom radius
}

type EventType uint8

const (
	EvtPointerDown EventType = iota
	EvtPointerMove
	EvtPointerUp
	EvtPointerLeave
	EvtZoom
	EvtReset
)

// Bus queues input events between frames and dispatches them in order
type Bus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (b *Bus) On(t EventType, h EventHandler) {
	b.listeners[t] = append(b.listeners[t], h)
}

// Emit queues an event for dispatch
func (b *Bus) Emit(e Event) {
	b.queue = append(b.queue, e)
}

// Pending returns the number of queued events
func (b *Bus) Pending() int { return len(b.queue) }

// Dispatch runs every queued event to completion, in emit order
func (b *Bus) Dispatch() {
	for _, e := range b.queue {
		for _, h := range b.listeners[e.Type] {
			h(e)
		}
	}
	b.queue = b.queue[:0]
}

// Subscribe wires the controller's transitions to bus events.
func (c *Controller) Subscribe(b *Bus) {
	b.On(EvtPointerDown, func(e Event) { c.PointerDown(e.X, e.Y) })
	b.On(EvtPointerMove, func(e Event) { c.PointerMove(e.X, e.Y) })
	b.On(EvtPointerUp, func(Event) { c.PointerUp() })
	b.On(EvtPointerLeave, func(Event) { c.PointerLeave() })
	b.On(EvtZoom, func(e Event) { c.SetRadius(e.Value) })
	b.On(EvtReset, func(Event) { c.Reset() })
}
