package ecs

// EventType identifies gameplay events emitted during a tick.
type EventType string

const (
	EventStomp      EventType = "stomp"
	EventPlayerDied EventType = "player_died"
)

// Event records something a system resolved. Other is the counterpart of the
// interaction (the foe stomped or the foe that hit).
type Event struct {
	Type   EventType
	Entity Entity
	Other  Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
