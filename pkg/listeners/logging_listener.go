// Package listeners provides listeners for monitoring traffic light events
package listeners

import (
	"github.com/rs/zerolog"

	"github.com/anggasct/trafficsim"
)

// LoggingListener writes a structured log record for every event it receives
type LoggingListener struct {
	name   string
	level  zerolog.Level
	logger zerolog.Logger
}

// NewLoggingListener creates a new logging listener
func NewLoggingListener(logger zerolog.Logger, level zerolog.Level, name string) *LoggingListener {
	return &LoggingListener{
		name:   name,
		level:  level,
		logger: logger.With().Str("listener", name).Logger(),
	}
}

// Name implements trafficsim.Named
func (l *LoggingListener) Name() string {
	return l.name
}

// Update implements trafficsim.Listener
func (l *LoggingListener) Update(event trafficsim.EventType) {
	l.logger.WithLevel(l.level).
		Str("event", event.String()).
		Msg("event received")
}
