package trafficsim

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// LightStatus is the color the traffic light is showing
type LightStatus string

const (
	Red    LightStatus = "red"
	Yellow LightStatus = "yellow"
	Green  LightStatus = "green"
)

// Transition describes one edge of the light's state diagram
type Transition struct {
	From  LightStatus
	To    LightStatus
	Event EventType
}

// Yellow is declared but no transition produces it.
var lightTransitions = []Transition{
	{From: Red, To: Green, Event: LightTurnedGreen},
	{From: Green, To: Red, Event: LightTurnedRed},
}

// TrafficLight alternates between red and green and publishes each switch
type TrafficLight struct {
	status   LightStatus
	switches int
	manager  *EventManager
	out      io.Writer
	logger   zerolog.Logger
	mutex    sync.RWMutex
}

// LightOption configures a TrafficLight
type LightOption func(*TrafficLight)

// WithLightOutput sets where transition announcements are printed
func WithLightOutput(w io.Writer) LightOption {
	return func(tl *TrafficLight) {
		tl.out = w
	}
}

// WithLightLogger sets the structured logger, shared with the light's event manager
func WithLightLogger(logger zerolog.Logger) LightOption {
	return func(tl *TrafficLight) {
		tl.logger = logger
	}
}

// NewTrafficLight creates a red light with its own event manager
func NewTrafficLight(opts ...LightOption) *TrafficLight {
	tl := &TrafficLight{
		status: Red,
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(tl)
	}
	tl.manager = NewEventManager(tl.logger)
	return tl
}

// Status returns the current light status
func (tl *TrafficLight) Status() LightStatus {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()
	return tl.status
}

// Switches returns the number of completed transitions
func (tl *TrafficLight) Switches() int {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()
	return tl.switches
}

// EventManager returns the manager listeners subscribe through
func (tl *TrafficLight) EventManager() *EventManager {
	return tl.manager
}

// States returns every declared light status, reachable or not
func (tl *TrafficLight) States() []LightStatus {
	return []LightStatus{Red, Yellow, Green}
}

// Transitions returns the light's state diagram
func (tl *TrafficLight) Transitions() []Transition {
	result := make([]Transition, len(lightTransitions))
	copy(result, lightTransitions)
	return result
}

// SwitchLight toggles between green and red and returns the new status.
// Every subscriber has been notified when it returns.
func (tl *TrafficLight) SwitchLight() LightStatus {
	if tl.Status() == Green {
		tl.ChangeToRed()
	} else {
		tl.ChangeToGreen()
	}
	return tl.Status()
}

// ChangeToGreen turns the light green and notifies LightTurnedGreen subscribers
func (tl *TrafficLight) ChangeToGreen() {
	tl.change(Green, LightTurnedGreen)
}

// ChangeToRed turns the light red and notifies LightTurnedRed subscribers
func (tl *TrafficLight) ChangeToRed() {
	tl.change(Red, LightTurnedRed)
}

func (tl *TrafficLight) change(to LightStatus, event EventType) {
	fmt.Fprintf(tl.out, "Traffic light turned %s\n", strings.ToUpper(string(to)))

	tl.mutex.Lock()
	from := tl.status
	tl.status = to
	tl.switches++
	tl.mutex.Unlock()

	tl.logger.Info().
		Str("from", string(from)).
		Str("to", string(to)).
		Str("event", event.String()).
		Msg("traffic light switched")

	// lock is released so listeners can read Status
	tl.manager.Notify(event)
}
