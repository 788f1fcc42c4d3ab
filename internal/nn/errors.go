package nn

import "errors"

var (
	// ErrInvalidStructure is returned for a structure with fewer than two widths
	// or a non-positive width.
	ErrInvalidStructure = errors.New("nn: invalid structure")

	// ErrNoSamples is returned when the cost is requested over an empty training set.
	ErrNoSamples = errors.New("nn: no samples")

	// ErrBadCheckpoint is returned when a checkpoint file cannot be decoded.
	ErrBadCheckpoint = errors.New("nn: bad checkpoint")
)
