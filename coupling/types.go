// Package coupling: strategy interfaces, options and sentinel errors.
package coupling

import (
	"errors"

	"github.com/katalvlaran/gridwave/field"
)

// Sentinel errors for coupling construction and use.
var (
	// ErrDimension indicates a position-axis count different from the grid rank.
	ErrDimension = errors.New("coupling: positions must span 1, 2 or 3 axes matching the grid rank")
	// ErrPositionLengths indicates per-axis coordinate sequences of differing lengths.
	ErrPositionLengths = errors.New("coupling: per-axis position sequences must have equal lengths")
	// ErrSignalRows indicates a signal table whose row count differs from the point count.
	ErrSignalRows = errors.New("coupling: signal rows must match the number of points")
	// ErrShapeMismatch indicates a field whose shape differs from the coupling grid.
	ErrShapeMismatch = errors.New("coupling: field shape does not match the grid")
	// ErrStepRange indicates a time index outside the signal table.
	ErrStepRange = errors.New("coupling: time step outside the signal table")
	// ErrNilMask indicates a transducer constructed without a weighting mask.
	ErrNilMask = errors.New("coupling: transducer requires a weighting mask")
	// ErrUnsupportedAngle indicates a tilted line transducer, which is not implemented.
	ErrUnsupportedAngle = errors.New("coupling: line transducer angle must be zero")
)

// Source drives a field: Inject returns the field-shaped contribution to
// add at discrete time step n. A source with an empty signal table
// yields an all-zero contribution.
type Source interface {
	Inject(n int) (*field.Field, error)
}

// Sensor extracts a field: Sample returns one value per sensor point.
// The caller stacks successive samples into the points × steps record of
// a full run.
type Sensor interface {
	Sample(f *field.Field) ([]float64, error)
}

// Masker exposes the boolean grid footprint of a coupling object, used
// for visualization and for defining localized media regions.
type Masker interface {
	Mask() *field.Mask
}

// BLIOptions tunes band-limited coupling objects.
//
// Fields:
//   - IncludeImag — also precompute the analytic (complex) kernel, which
//     keeps the even-grid Nyquist phase. Enable it when sampling complex,
//     phase-carrying wavefields; plain real fields never need it.
type BLIOptions struct {
	IncludeImag bool
}

// DefaultBLIOptions returns the real-kernel configuration.
func DefaultBLIOptions() BLIOptions { return BLIOptions{} }

// validGrid checks the shape and the per-axis position count layout
// shared by every positional constructor.
func validGrid(shape field.Shape, axes int) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if axes != shape.Rank() {
		return ErrDimension
	}
	return nil
}
