package components

import (
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/yohamta/donburi"
)

// EventQueueData collects the events raised while a tick runs.
type EventQueueData struct {
	Events []messages.Event
}

func (q *EventQueueData) Push(ev messages.Event) {
	q.Events = append(q.Events, ev)
}

// Drain returns the queued events and empties the queue.
func (q *EventQueueData) Drain() []messages.Event {
	out := q.Events
	q.Events = nil
	return out
}

var EventQueue = donburi.NewComponentType[EventQueueData]()

// PushEvent queues ev on the world's level entity, if there is one.
func PushEvent(w donburi.World, ev messages.Event) {
	if entry, ok := EventQueue.First(w); ok {
		EventQueue.Get(entry).Push(ev)
	}
}
