package game

import (
	"errors"
	"fmt"
)

var (
	ErrPrecondition  = errors.New("precondition violated")
	ErrConfiguration = errors.New("invalid problem configuration")
)

// PreconditionError reports a call to a Problem operation outside its domain,
// such as a transition from a terminal state. Problems panic with it.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPrecondition, e.Op, e.Msg)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

func preconditionf(op string, format string, args ...any) *PreconditionError {
	return &PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a concrete problem that was built inconsistently.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.Msg == "" {
		return ErrConfiguration.Error()
	}
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configurationf(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
