package config

import "fmt"

type ConfigInitError struct {
	msg string
	err error
}

func (e *ConfigInitError) Error() string {
	return e.msg
}

func (e *ConfigInitError) Unwrap() error {
	return e.err
}

// ValidationError names the config field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
