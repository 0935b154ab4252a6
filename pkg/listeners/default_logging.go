package listeners

import "github.com/rs/zerolog"

// NewDefaultLoggingListener creates a logging listener with default settings (info level)
func NewDefaultLoggingListener(logger zerolog.Logger) *LoggingListener {
	return NewLoggingListener(logger, zerolog.InfoLevel, "TrafficLight")
}
