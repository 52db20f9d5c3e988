package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrUnsupported     = errors.New("unsupported")
	ErrNoOpener        = errors.New("no opener available")
	ErrInvalidResource = errors.New("invalid resource")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidResource
}

// LaunchError represents a failure to start a resource
type LaunchError struct {
	Name   string
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch %s (%s): %v", e.Name, e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
