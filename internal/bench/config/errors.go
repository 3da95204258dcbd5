package config

import (
	"errors"
	"fmt"
)

// Validation errors, wrapped in a *ConfigError and matched with errors.Is.
var (
	ErrMissingArgument     = errors.New("missing argument")
	ErrTooManyArguments    = errors.New("too many arguments")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNegativeCount       = errors.New("count must not be negative")
	ErrFractionRange       = errors.New("fraction must be within [0, 1]")
	ErrWorkerCount         = errors.New("invalid worker count")
	ErrInitialExceedsRange = errors.New("initial count exceeds the operand range")
)

// ConfigError reports which parameter failed validation.
type ConfigError struct {
	Param string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config: %s: %v", e.Param, e.Err)
	}
	return fmt.Sprintf("config: %s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newError(param, value string, err error) *ConfigError {
	return &ConfigError{Param: param, Value: value, Err: err}
}
