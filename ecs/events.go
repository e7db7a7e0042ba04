package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// EventPlaySound requests a fire-and-forget one-shot sound. The simulation
// never observes the result of playback.
const EventPlaySound = "sound.play_once"

// SoundRequest names the clip to play once.
type SoundRequest struct {
	Name string
}

// EventQueue is a simple FIFO queue, drained once per tick.
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

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
