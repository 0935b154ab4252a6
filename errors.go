package trafficsim

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions in the simulation
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Event type has no subscriber list in the manager
	ErrCodeUnregisteredEvent
	// Listener received an event type it cannot handle
	ErrCodeUnknownEvent
	// Simulation configuration is invalid
	ErrCodeInvalidConfiguration
)

// EventError reports a programmer fault around event types.
// It is raised through panic, never returned.
type EventError struct {
	Code    ErrorCode
	Event   EventType
	Message string
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event error [%s]: %s", e.Event, e.Message)
}

// Is matches another *EventError carrying the same code.
func (e *EventError) Is(target error) bool {
	t, ok := target.(*EventError)
	return ok && t.Code == e.Code
}

// NewUnregisteredEventError creates an error for an event type the manager was never initialised with
func NewUnregisteredEventError(event EventType) *EventError {
	return &EventError{
		Code:    ErrCodeUnregisteredEvent,
		Event:   event,
		Message: "no subscriber list registered for event type",
	}
}

// NewUnknownEventError creates an error for an event type a listener cannot dispatch
func NewUnknownEventError(event EventType, listener string) *EventError {
	return &EventError{
		Code:    ErrCodeUnknownEvent,
		Event:   event,
		Message: fmt.Sprintf("listener '%s' has no handler for event type", listener),
	}
}

// ConfigurationError represents simulation configuration issues
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// IsEventError checks if an error is an EventError
func IsEventError(err error) bool {
	var e *EventError
	return errors.As(err, &e)
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var eventErr *EventError
	if errors.As(err, &eventErr) {
		return eventErr.Code
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return ErrCodeInvalidConfiguration
	}
	return ErrCodeNone
}
