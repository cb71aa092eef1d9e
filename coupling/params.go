package coupling

import (
	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/signal"
)

// Leaves holds the differentiable numeric state of a coupling object:
// the values a gradient-based optimizer may vary. Unset members are nil
// (or zero for Dt) when the corresponding strategy has no such leaf.
//
// Together with Frozen, Leaves gives every coupling object an explicit
// two-part export/rebuild protocol: an autodiff layer can traverse and
// perturb the leaves and reconstruct an equivalent object through the
// matching Unflatten constructor, without this package depending on any
// particular autodiff system.
type Leaves struct {
	// Positions holds per-axis fractional coordinates (band-limited
	// strategies, where position gradients are meaningful).
	Positions [][]float64
	// Signal is the flattened row-major drive-signal data.
	Signal []float64
	// MaskValues is the flattened continuous weighting mask of a
	// distributed transducer.
	MaskValues []float64
	// Dt is the drive-signal time step.
	Dt float64
}

// Frozen holds the static configuration of a coupling object: the part
// no optimizer may vary without changing the problem itself.
type Frozen struct {
	// Shape is the grid geometry.
	Shape field.Shape
	// IntPositions holds per-axis integer indices (point strategies,
	// where positions are discrete and non-differentiable).
	IntPositions [][]int
	// Points and Steps describe the signal-table layout needed to
	// re-fold Leaves.Signal.
	Points, Steps int
	// Opts carries band-limited kernel options.
	Opts BLIOptions
}

// Flatten splits the source into differentiable leaves (signal values,
// dt) and frozen configuration (grid shape, integer positions).
func (s *PointSources) Flatten() (Leaves, Frozen) {
	return Leaves{Signal: s.signals.Raw(), Dt: s.dt},
		Frozen{Shape: s.shape, IntPositions: s.positions, Points: s.signals.Points(), Steps: s.signals.Steps()}
}

// UnflattenPointSources rebuilds a PointSources from a Flatten split.
func UnflattenPointSources(l Leaves, f Frozen) (*PointSources, error) {
	table, err := signal.NewTableFrom(f.Points, f.Steps, l.Signal)
	if err != nil {
		return nil, err
	}
	return NewPointSources(f.Shape, f.IntPositions, table, l.Dt)
}

// Flatten splits the sensors into (empty) leaves and frozen
// configuration; on-grid sensors carry no differentiable state.
func (s *PointSensors) Flatten() (Leaves, Frozen) {
	return Leaves{}, Frozen{Shape: s.shape, IntPositions: s.positions}
}

// UnflattenPointSensors rebuilds a PointSensors from a Flatten split.
func UnflattenPointSensors(_ Leaves, f Frozen) (*PointSensors, error) {
	return NewPointSensors(f.Shape, f.IntPositions)
}

// Flatten splits the sensors into differentiable leaves (the fractional
// positions) and frozen configuration (grid shape, kernel options).
// Weight matrices are derived state and are rebuilt on Unflatten.
func (s *BLISensors) Flatten() (Leaves, Frozen) {
	return Leaves{Positions: s.positions}, Frozen{Shape: s.shape, Opts: BLIOptions{IncludeImag: s.cw != nil}}
}

// UnflattenBLISensors rebuilds a BLISensors from a Flatten split,
// recomputing the per-axis weight matrices.
func UnflattenBLISensors(l Leaves, f Frozen) (*BLISensors, error) {
	return NewBLISensors(f.Shape, l.Positions, f.Opts)
}

// Flatten splits the sources into differentiable leaves (positions,
// signal values, dt) and frozen configuration.
func (s *BLISources) Flatten() (Leaves, Frozen) {
	return Leaves{Positions: s.positions, Signal: s.signals.Raw(), Dt: s.dt},
		Frozen{Shape: s.shape, Points: s.signals.Points(), Steps: s.signals.Steps()}
}

// UnflattenBLISources rebuilds a BLISources from a Flatten split,
// recomputing the per-axis weight matrices.
func UnflattenBLISources(l Leaves, f Frozen) (*BLISources, error) {
	table, err := signal.NewTableFrom(f.Points, f.Steps, l.Signal)
	if err != nil {
		return nil, err
	}
	return NewBLISources(f.Shape, l.Positions, table, l.Dt)
}

// Flatten splits the transducer into differentiable leaves (mask
// values, signal, dt) and frozen configuration (grid shape).
func (t *DistributedTransducer) Flatten() (Leaves, Frozen) {
	maskValues := make([]float64, len(t.mask.Data))
	copy(maskValues, t.mask.Data)
	sig := make([]float64, len(t.signal))
	copy(sig, t.signal)
	return Leaves{MaskValues: maskValues, Signal: sig, Dt: t.dt}, Frozen{Shape: t.mask.Shape}
}

// UnflattenDistributedTransducer rebuilds a transducer from a Flatten
// split.
func UnflattenDistributedTransducer(l Leaves, f Frozen) (*DistributedTransducer, error) {
	mask, err := field.NewField(f.Shape, l.MaskValues)
	if err != nil {
		return nil, err
	}
	return NewDistributedTransducer(mask, l.Signal, l.Dt)
}
