package game

type EventType int

const (
	EventIntroDone EventType = iota
	EventSpawned
	EventSlowed
	EventCollision
	EventRestart
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (the ObstacleKind for spawn and hit events).
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the simulation thread. A nil bus
// drops every event.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
