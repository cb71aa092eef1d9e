package coupling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwave/coupling"
	"github.com/katalvlaran/gridwave/field"
)

// TestDistributedTransducer_Transmit verifies that Inject scales the
// weighting mask by the signal value and that an empty signal is the
// valid receive-only case.
func TestDistributedTransducer_Transmit(t *testing.T) {
	mask, err := field.NewField(field.Shape{2, 2}, []float64{0, 0.5, 1, 0})
	require.NoError(t, err, "mask must wrap")

	tr, err := coupling.NewDistributedTransducer(mask, []float64{2, -4}, 1e-3)
	require.NoError(t, err, "transducer must build")

	out, err := tr.Inject(1)
	require.NoError(t, err, "step 1 is inside the signal")
	assert.Equal(t, []float64{0, -2, -4, 0}, out.Data, "mask scaled by signal[1]")

	_, err = tr.Inject(2)
	assert.ErrorIs(t, err, coupling.ErrStepRange, "step beyond the signal must error")

	silent := tr.WithSignal(nil, 0)
	out, err = silent.Inject(9)
	require.NoError(t, err, "receive-only transducer injects silence")
	assert.Equal(t, []float64{0, 0, 0, 0}, out.Data, "all-zero contribution")
}

// TestDistributedTransducer_Receive verifies the inner-product output.
func TestDistributedTransducer_Receive(t *testing.T) {
	mask, err := field.NewField(field.Shape{2, 2}, []float64{0, 0.5, 1, 0})
	require.NoError(t, err, "mask must wrap")
	tr, err := coupling.NewDistributedTransducer(mask, nil, 0)
	require.NoError(t, err, "transducer must build")

	f, err := field.NewField(field.Shape{2, 2}, []float64{7, 4, 3, 9})
	require.NoError(t, err, "field must wrap")

	got, err := tr.Sample(f)
	require.NoError(t, err, "matching shapes must sample")
	require.Len(t, got, 1, "scalar transducer output")
	assert.InDelta(t, 0.5*4+1*3, got[0], 1e-15, "inner product of mask and field")

	_, err = tr.Sample(field.Zeros(field.Shape{4}))
	assert.ErrorIs(t, err, coupling.ErrShapeMismatch, "wrong field shape must error")

	_, err = coupling.NewDistributedTransducer(nil, nil, 0)
	assert.ErrorIs(t, err, coupling.ErrNilMask, "nil mask must error")
}

// TestNewLineTransducer verifies the aperture footprint and the angle
// guard.
func TestNewLineTransducer(t *testing.T) {
	tr, err := coupling.NewLineTransducer(field.Shape{8, 8}, 2, 4, 0)
	require.NoError(t, err, "flat line transducer must build")

	m := tr.Mask()
	assert.Equal(t, 4, m.Count(), "width cells in the footprint")
	for y := 2; y < 6; y++ {
		assert.True(t, m.Data[2*8+y], "aperture column %d marked", y)
	}

	_, err = coupling.NewLineTransducer(field.Shape{8, 8}, 2, 4, 0.1)
	assert.ErrorIs(t, err, coupling.ErrUnsupportedAngle, "tilted aperture must error")
}

// TestDistributedTransducer_Reciprocity verifies transmit/receive
// consistency: receiving the transmitted field equals the signal value
// times the mask's self inner product.
func TestDistributedTransducer_Reciprocity(t *testing.T) {
	mask, err := field.NewField(field.Shape{4}, []float64{0, 1, 0.25, 0})
	require.NoError(t, err, "mask must wrap")
	tr, err := coupling.NewDistributedTransducer(mask, []float64{3}, 1.0)
	require.NoError(t, err, "transducer must build")

	out, err := tr.Inject(0)
	require.NoError(t, err, "injection must succeed")
	got, err := tr.Sample(out)
	require.NoError(t, err, "sampling the own field must succeed")
	assert.InDelta(t, 3*(1+0.25*0.25), got[0], 1e-15, "signal times ⟨mask,mask⟩")
}
