package listeners

import (
	"fmt"
	"sync"

	"github.com/anggasct/trafficsim"
)

// ValidationListener checks that events alternate strictly, starting with green
type ValidationListener struct {
	last       trafficsim.EventType
	received   int
	violations []string
	mutex      sync.RWMutex
}

// NewValidationListener creates a new validation listener
func NewValidationListener() *ValidationListener {
	return &ValidationListener{
		violations: make([]string, 0),
	}
}

// Name implements trafficsim.Named
func (l *ValidationListener) Name() string {
	return "AlternationValidator"
}

// Update implements trafficsim.Listener
func (l *ValidationListener) Update(event trafficsim.EventType) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.received++
	expected := trafficsim.LightTurnedGreen
	if l.last == trafficsim.LightTurnedGreen {
		expected = trafficsim.LightTurnedRed
	}

	if event != expected {
		l.violations = append(l.violations,
			fmt.Sprintf("event %d: expected %s, got %s", l.received, expected, event))
	}
	l.last = event
}

// Received returns the number of events seen
func (l *ValidationListener) Received() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.received
}

// GetViolations returns all recorded violations
func (l *ValidationListener) GetViolations() []string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	result := make([]string, len(l.violations))
	copy(result, l.violations)
	return result
}

// IsValid returns true if no violations were recorded
func (l *ValidationListener) IsValid() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.violations) == 0
}

// Reset clears the recorded history
func (l *ValidationListener) Reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.last = 0
	l.received = 0
	l.violations = make([]string, 0)
}
