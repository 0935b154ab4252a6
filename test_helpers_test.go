package trafficsim

import (
	"context"
	"testing"
	"time"
)

func TestTestHelpers_Functions(t *testing.T) {
	t.Run("TestListener Basic Functionality", func(t *testing.T) {
		listener := NewTestListener("probe")

		if listener.Count() != 0 {
			t.Errorf("Expected 0 events initially, got %d", listener.Count())
		}

		listener.Update(LightTurnedGreen)
		listener.Update(LightTurnedRed)
		listener.Update(LightTurnedGreen)

		if listener.Count() != 3 {
			t.Errorf("Expected 3 events, got %d", listener.Count())
		}
		if listener.CountOf(LightTurnedGreen) != 2 {
			t.Errorf("Expected 2 green events, got %d", listener.CountOf(LightTurnedGreen))
		}
		if listener.Name() != "probe" {
			t.Errorf("Expected name 'probe', got '%s'", listener.Name())
		}

		listener.Reset()
		if listener.Count() != 0 {
			t.Errorf("Expected 0 events after reset, got %d", listener.Count())
		}
	})

	t.Run("RecordingWait", func(t *testing.T) {
		wait := &RecordingWait{}
		if err := wait.Wait(context.Background(), time.Minute); err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
		if len(wait.Delays) != 1 || wait.Delays[0] != time.Minute {
			t.Errorf("Expected one recorded minute, got %v", wait.Delays)
		}
	})

	t.Run("AssertAlternating", func(t *testing.T) {
		AssertAlternating(t, []EventType{LightTurnedGreen, LightTurnedRed, LightTurnedGreen})
	})
}
