package trafficsim

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Listener represents an entity that observes traffic light events
type Listener interface {
	// Update is called synchronously for every event the listener is subscribed to
	Update(event EventType)
}

// Named is implemented by listeners that carry a display name
type Named interface {
	Name() string
}

// ListenerName returns the display name of a listener, falling back to its Go type
func ListenerName(l Listener) string {
	if n, ok := l.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", l)
}

// EventManager keeps an ordered subscriber list per event type.
// Listeners are held by reference; the manager never owns them.
// Listeners are compared by identity, so use pointer receivers.
type EventManager struct {
	listeners map[EventType][]Listener
	logger    zerolog.Logger
	mutex     sync.RWMutex
}

// NewEventManager creates a manager with an empty list for every declared event type
func NewEventManager(logger ...zerolog.Logger) *EventManager {
	em := &EventManager{
		listeners: make(map[EventType][]Listener),
		logger:    zerolog.Nop(),
	}
	if len(logger) > 0 {
		em.logger = logger[0]
	}
	for _, eventType := range EventTypes() {
		em.listeners[eventType] = make([]Listener, 0)
	}
	return em
}

// mustRegistered panics when the event type has no list; callers hold the mutex
func (em *EventManager) mustRegistered(event EventType) []Listener {
	list, ok := em.listeners[event]
	if !ok {
		panic(NewUnregisteredEventError(event))
	}
	return list
}

// Subscribe appends a listener to the event type's list.
// Subscribing twice yields two notifications per event.
func (em *EventManager) Subscribe(event EventType, listener Listener) {
	em.mutex.Lock()
	defer em.mutex.Unlock()

	list := em.mustRegistered(event)
	em.listeners[event] = append(list, listener)

	em.logger.Debug().
		Str("event", event.String()).
		Str("listener", ListenerName(listener)).
		Int("subscribers", len(em.listeners[event])).
		Msg("listener subscribed")
}

// SubscribeAll subscribes a listener to every declared event type
func (em *EventManager) SubscribeAll(listener Listener) {
	for _, eventType := range EventTypes() {
		em.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes the first matching occurrence of a listener.
// It is a no-op when the listener is not subscribed.
func (em *EventManager) Unsubscribe(event EventType, listener Listener) {
	em.mutex.Lock()
	defer em.mutex.Unlock()

	list := em.mustRegistered(event)
	for i, l := range list {
		if l == listener {
			em.listeners[event] = append(list[:i:i], list[i+1:]...)
			em.logger.Debug().
				Str("event", event.String()).
				Str("listener", ListenerName(listener)).
				Msg("listener unsubscribed")
			return
		}
	}
}

// Notify calls Update on every listener subscribed to the event type, in subscription order.
// Changes to the subscriber list made from inside a callback apply to the next Notify.
func (em *EventManager) Notify(event EventType) {
	listeners := em.Listeners(event)

	em.logger.Debug().
		Str("event", event.String()).
		Int("subscribers", len(listeners)).
		Msg("notifying listeners")

	for _, listener := range listeners {
		listener.Update(event)
	}
}

// Listeners returns a copy of the subscriber list for an event type
func (em *EventManager) Listeners(event EventType) []Listener {
	em.mutex.RLock()
	defer em.mutex.RUnlock()

	list := em.mustRegistered(event)
	result := make([]Listener, len(list))
	copy(result, list)
	return result
}

// Count returns the number of subscriptions for an event type
func (em *EventManager) Count(event EventType) int {
	em.mutex.RLock()
	defer em.mutex.RUnlock()

	return len(em.mustRegistered(event))
}
