package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput input rejected at construction
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateLiquidation maintenance margin consumes the whole leverage buffer
	ErrDegenerateLiquidation = errors.New("degenerate liquidation price")
)

// ValidationError invalid field value
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field string, value interface{}, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
