package trafficsim

import (
	"context"
	"sync"
	"testing"
	"time"
)

// TestListener is a mock listener that records every event it receives
type TestListener struct {
	name   string
	mutex  sync.RWMutex
	Events []EventType
}

// NewTestListener creates a new test listener
func NewTestListener(name string) *TestListener {
	return &TestListener{
		name:   name,
		Events: make([]EventType, 0),
	}
}

// Name implements Named
func (l *TestListener) Name() string {
	return l.name
}

// Update implements Listener
func (l *TestListener) Update(event EventType) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.Events = append(l.Events, event)
}

func (l *TestListener) Reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.Events = nil
}

func (l *TestListener) Count() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.Events)
}

func (l *TestListener) CountOf(event EventType) int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	n := 0
	for _, e := range l.Events {
		if e == event {
			n++
		}
	}
	return n
}

func (l *TestListener) Received() []EventType {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	result := make([]EventType, len(l.Events))
	copy(result, l.Events)
	return result
}

// RecordingWait is a WaitFunc that records requested delays instead of sleeping
type RecordingWait struct {
	mutex  sync.Mutex
	Delays []time.Duration
}

func (w *RecordingWait) Wait(ctx context.Context, d time.Duration) error {
	w.mutex.Lock()
	w.Delays = append(w.Delays, d)
	w.mutex.Unlock()
	return ctx.Err()
}

// AssertStatus checks the light's current status
func AssertStatus(t *testing.T, light *TrafficLight, expected LightStatus) {
	t.Helper()
	if got := light.Status(); got != expected {
		t.Errorf("Expected light status '%s', got '%s'", expected, got)
	}
}

// AssertMoving checks a vehicle's moving flag
func AssertMoving(t *testing.T, vehicle *Vehicle, expected bool) {
	t.Helper()
	if got := vehicle.IsMoving(); got != expected {
		t.Errorf("Expected vehicle '%s' moving=%v, got %v", vehicle.Name(), expected, got)
	}
}

// AssertAlternating checks that events alternate green/red starting with green
func AssertAlternating(t *testing.T, events []EventType) {
	t.Helper()
	for i, e := range events {
		expected := LightTurnedGreen
		if i%2 == 1 {
			expected = LightTurnedRed
		}
		if e != expected {
			t.Errorf("Event %d: expected '%s', got '%s'", i, expected, e)
		}
	}
}
