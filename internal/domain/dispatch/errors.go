package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for this package. Typed errors below unwrap to them so
// callers can use errors.Is for the kind and errors.As for the details.
var (
	ErrUnknownWorkoutType       = errors.New("unknown workout type")
	ErrFieldCountMismatch       = errors.New("field count mismatch")
	ErrInvalidField             = errors.New("invalid field value")
	ErrUnimplementedCalculation = errors.New("unimplemented calculation")
	ErrInvalidEntry             = errors.New("invalid dispatch entry")
)

// UnknownWorkoutTypeError reports a code missing from the table.
type UnknownWorkoutTypeError struct {
	Code  string
	Valid []string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("%s %q: valid types are %s", ErrUnknownWorkoutType, e.Code, strings.Join(e.Valid, ", "))
}

func (e *UnknownWorkoutTypeError) Unwrap() error { return ErrUnknownWorkoutType }

// FieldCountMismatchError reports a package with the wrong number of values.
type FieldCountMismatchError struct {
	Code string
	Got  int
	Want int
}

func (e *FieldCountMismatchError) Error() string {
	return fmt.Sprintf("%s for %s: got %d values, %s requires %d", ErrFieldCountMismatch, e.Code, e.Got, e.Code, e.Want)
}

func (e *FieldCountMismatchError) Unwrap() error { return ErrFieldCountMismatch }

// InvalidFieldError reports a value outside its field's domain.
type InvalidFieldError struct {
	Code   string
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s for %s: %s=%g %s", ErrInvalidField, e.Code, e.Field, e.Value, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidField }

// UnimplementedCalculationError reports a variant registered without a
// calculator constructor.
type UnimplementedCalculationError struct {
	Variant string
}

func (e *UnimplementedCalculationError) Error() string {
	return fmt.Sprintf("%s: define a calculator for %s", ErrUnimplementedCalculation, e.Variant)
}

func (e *UnimplementedCalculationError) Unwrap() error { return ErrUnimplementedCalculation }
