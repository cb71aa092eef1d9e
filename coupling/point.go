package coupling

import (
	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/signal"
)

// PointSources injects per-point drive signals at exact integer grid
// indices: the degenerate, cheap limit of band-limited coupling where
// every point's support shrinks to a single grid cell.
type PointSources struct {
	shape     field.Shape
	positions [][]int
	signals   *signal.Table
	dt        float64
}

var (
	_ Source = (*PointSources)(nil)
	_ Masker = (*PointSources)(nil)
	_ Sensor = (*PointSensors)(nil)
	_ Masker = (*PointSensors)(nil)
)

// NewPointSources builds an on-grid source group. positions holds one
// integer coordinate sequence per grid axis; signals row p drives point
// p (a nil or empty table is the valid "no sources" case). Index values
// are not range-checked, mirroring slice semantics.
func NewPointSources(shape field.Shape, positions [][]int, signals *signal.Table, dt float64) (*PointSources, error) {
	if err := validGrid(shape, len(positions)); err != nil {
		return nil, err
	}
	num := len(positions[0])
	for _, axis := range positions[1:] {
		if len(axis) != num {
			return nil, ErrPositionLengths
		}
	}
	if !signals.Empty() && signals.Points() != num {
		return nil, ErrSignalRows
	}
	return &PointSources{shape: shape, positions: positions, signals: signals, dt: dt}, nil
}

// NoSources returns an empty source group over shape: Inject always
// yields an all-zero field.
func NoSources(shape field.Shape) (*PointSources, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	positions := make([][]int, shape.Rank())
	for d := range positions {
		positions[d] = []int{}
	}
	return &PointSources{shape: shape, positions: positions, dt: 1}, nil
}

// Dt returns the time step the drive signals are sampled on.
func (s *PointSources) Dt() float64 { return s.dt }

// Points returns the number of source points.
func (s *PointSources) Points() int { return len(s.positions[0]) }

// Inject scatter-adds column n of the signal table into a fresh
// field-shaped contribution: zero everywhere except at the source
// indices. An empty table yields an all-zero field.
func (s *PointSources) Inject(n int) (*field.Field, error) {
	out := field.Zeros(s.shape)
	if s.signals.Empty() {
		return out, nil
	}
	if n < 0 || n >= s.signals.Steps() {
		return nil, ErrStepRange
	}
	strides := s.shape.Strides()
	for p := 0; p < s.Points(); p++ {
		out.Data[s.flat(p, strides)] += s.signals.At(p, n)
	}
	return out, nil
}

// Mask returns the boolean footprint of the source points.
func (s *PointSources) Mask() *field.Mask {
	return pointMask(s.shape, s.positions)
}

func (s *PointSources) flat(p int, strides []int) int {
	off := 0
	for d := range s.positions {
		off += s.positions[d][p] * strides[d]
	}
	return off
}

// PointSensors gathers field values at exact integer grid indices.
type PointSensors struct {
	shape     field.Shape
	positions [][]int
}

// NewPointSensors builds an on-grid sensor group. positions holds one
// integer coordinate sequence per grid axis. Index values are not
// range-checked, mirroring slice semantics.
func NewPointSensors(shape field.Shape, positions [][]int) (*PointSensors, error) {
	if err := validGrid(shape, len(positions)); err != nil {
		return nil, err
	}
	num := len(positions[0])
	for _, axis := range positions[1:] {
		if len(axis) != num {
			return nil, ErrPositionLengths
		}
	}
	return &PointSensors{shape: shape, positions: positions}, nil
}

// Points returns the number of sensor points.
func (s *PointSensors) Points() int { return len(s.positions[0]) }

// Sample gathers the field value at every sensor index.
func (s *PointSensors) Sample(f *field.Field) ([]float64, error) {
	if !f.Shape.Equal(s.shape) {
		return nil, ErrShapeMismatch
	}
	strides := s.shape.Strides()
	out := make([]float64, s.Points())
	for p := range out {
		off := 0
		for d := range s.positions {
			off += s.positions[d][p] * strides[d]
		}
		out[p] = f.Data[off]
	}
	return out, nil
}

// Mask returns the boolean footprint of the sensor points.
func (s *PointSensors) Mask() *field.Mask {
	return pointMask(s.shape, s.positions)
}

// pointMask marks every listed grid index on a fresh mask.
func pointMask(shape field.Shape, positions [][]int) *field.Mask {
	m := field.NewMask(shape)
	strides := shape.Strides()
	for p := 0; p < len(positions[0]); p++ {
		off := 0
		for d := range positions {
			off += positions[d][p] * strides[d]
		}
		m.Data[off] = true
	}
	return m
}
