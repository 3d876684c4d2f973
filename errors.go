package numvec

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidInput is returned when a constructor receives a NaN,
	// infinite or unparseable element.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument is returned for a malformed factory or operation
	// argument (step, length, percentile, bounds, sample size).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLengthMismatch is returned when two vectors of different lengths
	// are combined.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDivisionByZero is returned when a vector divisor contains zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrEmptyVector is returned when a reduction needs at least one element.
	ErrEmptyVector = errors.New("empty vector")

	// ErrIndexOutOfRange is returned by Element for an out-of-bounds index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrDimensionMismatch indicates that two vectors have different lengths.
//
// It unwraps to ErrLengthMismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrLengthMismatch, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrLengthMismatch }

// ErrInvalidElement indicates a rejected element at construction.
//
// It unwraps to ErrInvalidInput.
type ErrInvalidElement struct {
	Index int
	Value float64
}

func (e *ErrInvalidElement) Error() string {
	return fmt.Sprintf("%v: element %d is %s", ErrInvalidInput, e.Index, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

func (e *ErrInvalidElement) Unwrap() error { return ErrInvalidInput }

func checkLength(expected, actual int) error {
	if expected != actual {
		return &ErrDimensionMismatch{Expected: expected, Actual: actual}
	}
	return nil
}

func checkCount(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidArgument, name, n)
	}
	return nil
}
