package coupling

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridwave/field"
)

// DistributedTransducer models an extended-aperture transducer: a
// continuous grid-shaped weighting mask driven by a single scalar time
// signal. Transmit mode scales the mask by the signal value; receive
// mode is the inner product of the mask with the field.
type DistributedTransducer struct {
	mask   *field.Field
	signal []float64
	dt     float64
}

var (
	_ Source = (*DistributedTransducer)(nil)
	_ Sensor = (*DistributedTransducer)(nil)
	_ Masker = (*DistributedTransducer)(nil)
)

// NewDistributedTransducer builds a transducer from its weighting mask,
// scalar drive signal and time step. An empty signal is the valid
// receive-only configuration.
func NewDistributedTransducer(mask *field.Field, sig []float64, dt float64) (*DistributedTransducer, error) {
	if mask == nil {
		return nil, ErrNilMask
	}
	if err := mask.Shape.Validate(); err != nil {
		return nil, err
	}
	return &DistributedTransducer{mask: mask, signal: sig, dt: dt}, nil
}

// NewLineTransducer builds a flat 2-D line transducer of the given
// aperture width, centred on the second axis at the given row, in
// receive-only configuration (attach a drive signal with WithSignal).
// Tilted apertures are not implemented: a non-zero angle returns
// ErrUnsupportedAngle.
func NewLineTransducer(shape field.Shape, row, width int, angle float64) (*DistributedTransducer, error) {
	if angle != 0 {
		return nil, ErrUnsupportedAngle
	}
	aperture, err := field.LineAperture(shape, row, width)
	if err != nil {
		return nil, err
	}
	return &DistributedTransducer{mask: aperture.ToField(), signal: nil, dt: 0}, nil
}

// Dt returns the time step the drive signal is sampled on.
func (t *DistributedTransducer) Dt() float64 { return t.dt }

// WithSignal returns a copy of t driving the same mask with sig.
func (t *DistributedTransducer) WithSignal(sig []float64, dt float64) *DistributedTransducer {
	return &DistributedTransducer{mask: t.mask, signal: sig, dt: dt}
}

// WithMask returns a copy of t with a replacement weighting mask.
func (t *DistributedTransducer) WithMask(mask *field.Field) *DistributedTransducer {
	return &DistributedTransducer{mask: mask, signal: t.signal, dt: t.dt}
}

// Inject returns the transmit-mode contribution at time step n: the
// weighting mask scaled by the signal value. An empty signal yields an
// all-zero field.
func (t *DistributedTransducer) Inject(n int) (*field.Field, error) {
	out := field.Zeros(t.mask.Shape)
	if len(t.signal) == 0 {
		return out, nil
	}
	if n < 0 || n >= len(t.signal) {
		return nil, ErrStepRange
	}
	if err := out.AddScaled(t.signal[n], t.mask); err != nil {
		return nil, err
	}
	return out, nil
}

// Sample returns the receive-mode output for the field: the inner
// product of the weighting mask with the field values, as a length-1
// record consistent with the per-point Sensor contract.
func (t *DistributedTransducer) Sample(f *field.Field) ([]float64, error) {
	if !f.Shape.Equal(t.mask.Shape) {
		return nil, ErrShapeMismatch
	}
	return []float64{floats.Dot(t.mask.Data, f.Data)}, nil
}

// Mask returns the boolean footprint of the weighting mask: every cell
// with a non-zero weight.
func (t *DistributedTransducer) Mask() *field.Mask {
	m := field.NewMask(t.mask.Shape)
	for i, v := range t.mask.Data {
		m.Data[i] = v != 0
	}
	return m
}
