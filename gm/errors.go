package gm

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a row or column index is not within [0, N).
	ErrIndexOutOfRange = errors.New("gm: index out of range")

	// ErrDimensionMismatch is returned when the number of values does not fit the target type.
	ErrDimensionMismatch = errors.New("gm: dimension mismatch")
)

func checkIndex(method string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s(%d): %w [0, %d)", method, i, ErrIndexOutOfRange, n)
	}

	return nil
}

func checkLen(method string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: %w, got %d values, want %d", method, ErrDimensionMismatch, got, want)
	}

	return nil
}
