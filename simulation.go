package trafficsim

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultRounds is how many times the light switches in a run
	DefaultRounds = 5
	// DefaultDelay is the pause between rounds, scaled down from a 60 second cycle
	DefaultDelay = 5 * time.Second
	// DefaultSeparator is printed after each round
	DefaultSeparator = "---------------"
)

// DefaultVehicles are the vehicles subscribed when none are configured
var DefaultVehicles = []string{"Tesla", "Toyota", "Ford"}

// SimulationConfig holds the fixed parameters of a run
type SimulationConfig struct {
	Rounds    int
	Delay     time.Duration
	Vehicles  []string
	Separator string
}

// DefaultSimulationConfig returns five rounds, five seconds apart, with three vehicles
func DefaultSimulationConfig() SimulationConfig {
	vehicles := make([]string, len(DefaultVehicles))
	copy(vehicles, DefaultVehicles)
	return SimulationConfig{
		Rounds:    DefaultRounds,
		Delay:     DefaultDelay,
		Vehicles:  vehicles,
		Separator: DefaultSeparator,
	}
}

// Validate checks the configuration
func (c SimulationConfig) Validate() error {
	if c.Rounds < 0 {
		return NewConfigurationError("Simulation", fmt.Sprintf("rounds must not be negative, got %d", c.Rounds))
	}
	if c.Delay < 0 {
		return NewConfigurationError("Simulation", fmt.Sprintf("delay must not be negative, got %s", c.Delay))
	}
	seen := make(map[string]bool, len(c.Vehicles))
	for _, name := range c.Vehicles {
		if name == "" {
			return NewConfigurationError("Simulation", "vehicle name must not be empty")
		}
		if seen[name] {
			return NewConfigurationError("Simulation", fmt.Sprintf("duplicate vehicle name '%s'", name))
		}
		seen[name] = true
	}
	return nil
}

// WaitFunc blocks for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

// TimerWait is the default WaitFunc
func TimerWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Simulation drives one traffic light and its subscribed vehicles
type Simulation struct {
	id        string
	config    SimulationConfig
	light     *TrafficLight
	vehicles  []*Vehicle
	listeners []Listener
	wait      WaitFunc
	out       io.Writer
	logger    zerolog.Logger
}

// SimulationOption configures a Simulation
type SimulationOption func(*Simulation)

// WithOutput sets where the light, vehicles and separators print
func WithOutput(w io.Writer) SimulationOption {
	return func(s *Simulation) {
		s.out = w
	}
}

// WithLogger sets the structured logger; every record carries the run id
func WithLogger(logger zerolog.Logger) SimulationOption {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithWait replaces the timer used between rounds
func WithWait(wait WaitFunc) SimulationOption {
	return func(s *Simulation) {
		s.wait = wait
	}
}

// WithListeners subscribes extra listeners to every event type after the vehicles
func WithListeners(listeners ...Listener) SimulationOption {
	return func(s *Simulation) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// NewSimulation builds the light and vehicles and subscribes each vehicle to both event types
func NewSimulation(config SimulationConfig, opts ...SimulationOption) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		id:     uuid.New().String(),
		config: config,
		wait:   TimerWait,
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("run_id", s.id).Logger()

	s.light = NewTrafficLight(WithLightOutput(s.out), WithLightLogger(s.logger))
	manager := s.light.EventManager()

	for _, name := range config.Vehicles {
		vehicle := NewVehicle(name, WithVehicleOutput(s.out), WithVehicleLogger(s.logger))
		manager.SubscribeAll(vehicle)
		s.vehicles = append(s.vehicles, vehicle)
	}
	for _, listener := range s.listeners {
		manager.SubscribeAll(listener)
	}

	return s, nil
}

// ID returns the run id
func (s *Simulation) ID() string {
	return s.id
}

// Light returns the simulated traffic light
func (s *Simulation) Light() *TrafficLight {
	return s.light
}

// Vehicles returns the simulated vehicles in subscription order
func (s *Simulation) Vehicles() []*Vehicle {
	result := make([]*Vehicle, len(s.vehicles))
	copy(result, s.vehicles)
	return result
}

// Run switches the light once per round, waiting the configured delay after each switch.
// It returns ctx.Err() if ctx is cancelled during a wait.
func (s *Simulation) Run(ctx context.Context) error {
	s.logger.Info().
		Int("rounds", s.config.Rounds).
		Dur("delay", s.config.Delay).
		Strs("vehicles", s.config.Vehicles).
		Msg("simulation started")

	for round := 1; round <= s.config.Rounds; round++ {
		status := s.light.SwitchLight()
		s.logger.Debug().Int("round", round).Str("status", string(status)).Msg("round switched")

		if err := s.wait(ctx, s.config.Delay); err != nil {
			s.logger.Warn().Err(err).Int("round", round).Msg("simulation interrupted")
			return err
		}
		fmt.Fprintln(s.out, s.config.Separator)
	}

	s.logger.Info().
		Int("switches", s.light.Switches()).
		Str("status", string(s.light.Status())).
		Msg("simulation finished")
	return nil
}
