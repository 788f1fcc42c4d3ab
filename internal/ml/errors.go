package ml

import "errors"

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible:
	// Add on different shapes, Dot where a.Cols != b.Rows, ragged FromRows input.
	ErrShapeMismatch = errors.New("ml: shape mismatch")

	// ErrEmpty is returned by FromRows when no rows are given.
	ErrEmpty = errors.New("ml: empty matrix")
)
