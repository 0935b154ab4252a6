package trafficsim

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicle_Defaults(t *testing.T) {
	v := NewVehicle("Tesla")

	assert.Equal(t, "Tesla", v.Name())
	assert.False(t, v.IsMoving(), "vehicles start stopped")
	_, err := uuid.Parse(v.ID())
	assert.NoError(t, err)
	assert.NotEqual(t, v.ID(), NewVehicle("Tesla").ID())
}

func TestVehicle_UpdateDispatch(t *testing.T) {
	var out bytes.Buffer
	v := NewVehicle("Toyota", WithVehicleOutput(&out))

	v.Update(LightTurnedGreen)
	AssertMoving(t, v, true)

	v.Update(LightTurnedRed)
	AssertMoving(t, v, false)

	assert.Equal(t, "Vehicle Toyota started running\nVehicle Toyota stopped\n", out.String())
}

func TestVehicle_EveryEventTypeHandled(t *testing.T) {
	v := NewVehicle("Ford", WithVehicleOutput(&bytes.Buffer{}))
	for _, e := range EventTypes() {
		assert.NotPanics(t, func() { v.Update(e) }, "event %s has no handler", e)
	}
}

func TestVehicle_UnknownEventPanics(t *testing.T) {
	v := NewVehicle("Ford", WithVehicleOutput(&bytes.Buffer{}))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*EventError)
		require.True(t, ok)
		assert.Equal(t, ErrCodeUnknownEvent, err.Code)
		assert.False(t, v.IsMoving())
	}()
	v.Update(EventType(0))
}

func TestVehicle_RunStopIdempotent(t *testing.T) {
	v := NewVehicle("Tesla", WithVehicleOutput(&bytes.Buffer{}))

	v.Run()
	v.Run()
	AssertMoving(t, v, true)

	v.Stop()
	v.Stop()
	AssertMoving(t, v, false)
}

func TestVehicle_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	v := NewVehicle("Tesla", WithVehicleOutput(&bytes.Buffer{}), WithVehicleLogger(logger))

	v.Run()

	assert.Contains(t, logs.String(), `"vehicle":"Tesla"`)
	assert.Contains(t, logs.String(), `"moving":true`)
	assert.Contains(t, logs.String(), `"vehicle_id":"`+v.ID()+`"`)
}
