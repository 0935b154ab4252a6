package trafficsim

import "fmt"

// EventType identifies which light transition occurred
type EventType int

const (
	// LightTurnedGreen is published when the light switches to green
	LightTurnedGreen EventType = iota + 1
	// LightTurnedRed is published when the light switches to red
	LightTurnedRed
)

var eventTypeNames = map[EventType]string{
	LightTurnedGreen: "light_turned_green",
	LightTurnedRed:   "light_turned_red",
}

// EventTypes returns every declared event type in declaration order
func EventTypes() []EventType {
	return []EventType{LightTurnedGreen, LightTurnedRed}
}

// String returns the event type name
func (e EventType) String() string {
	if name, ok := eventTypeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event_type(%d)", int(e))
}

// Valid reports whether e is one of the declared event types
func (e EventType) Valid() bool {
	_, ok := eventTypeNames[e]
	return ok
}
