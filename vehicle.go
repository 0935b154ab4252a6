package trafficsim

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Vehicle is a listener that moves on green and stops on red
type Vehicle struct {
	id       string
	name     string
	isMoving bool
	out      io.Writer
	logger   zerolog.Logger
	mutex    sync.RWMutex
}

// VehicleOption configures a Vehicle
type VehicleOption func(*Vehicle)

// WithVehicleOutput sets where status lines are printed
func WithVehicleOutput(w io.Writer) VehicleOption {
	return func(v *Vehicle) {
		v.out = w
	}
}

// WithVehicleLogger sets the structured logger
func WithVehicleLogger(logger zerolog.Logger) VehicleOption {
	return func(v *Vehicle) {
		v.logger = logger
	}
}

// NewVehicle creates a stopped vehicle
func NewVehicle(name string, opts ...VehicleOption) *Vehicle {
	v := &Vehicle{
		id:     uuid.New().String(),
		name:   name,
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ID returns the vehicle's unique identifier
func (v *Vehicle) ID() string {
	return v.id
}

// Name returns the vehicle name
func (v *Vehicle) Name() string {
	return v.name
}

// IsMoving reports whether the vehicle is currently moving
func (v *Vehicle) IsMoving() bool {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.isMoving
}

// Update implements Listener
func (v *Vehicle) Update(event EventType) {
	switch event {
	case LightTurnedGreen:
		v.Run()
	case LightTurnedRed:
		v.Stop()
	default:
		panic(NewUnknownEventError(event, v.name))
	}
}

// Run starts the vehicle
func (v *Vehicle) Run() {
	fmt.Fprintf(v.out, "Vehicle %s started running\n", v.name)
	v.setMoving(true)
}

// Stop stops the vehicle
func (v *Vehicle) Stop() {
	fmt.Fprintf(v.out, "Vehicle %s stopped\n", v.name)
	v.setMoving(false)
}

func (v *Vehicle) setMoving(moving bool) {
	v.mutex.Lock()
	v.isMoving = moving
	v.mutex.Unlock()

	v.logger.Debug().
		Str("vehicle", v.name).
		Str("vehicle_id", v.id).
		Bool("moving", moving).
		Msg("vehicle state changed")
}
