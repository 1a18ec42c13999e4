package matrix3

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrInvalidArgument is returned when a slice of the wrong length is
	// passed where a matrix is expected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned for an element, row or column index
	// outside the matrix.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func checkLen(op string, s []float64, n int) error {
	if len(s) == n {
		return nil
	}
	slog.Debug("wrong length", slog.String("op", op), slog.Int("len", len(s)), slog.Int("want", n))
	return fmt.Errorf("matrix3: %s: got %d values, want %d: %w", op, len(s), n, ErrInvalidArgument)
}

// checkIndex reports whether i is in [0,n).
func checkIndex(op string, i, n int) error {
	if 0 <= i && i < n {
		return nil
	}
	slog.Debug("index out of range", slog.String("op", op), slog.Int("index", i))
	return fmt.Errorf("matrix3: %s: index %d out of range [0,%d]: %w", op, i, n-1, ErrIndexOutOfRange)
}

func checkCell(op string, row, col int) error {
	if err := checkIndex(op, row, 3); err != nil {
		return err
	}
	return checkIndex(op, col, 3)
}
