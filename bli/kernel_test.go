package bli_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridwave/bli"
)

// TestWeights_Errors verifies the two construction failure modes.
func TestWeights_Errors(t *testing.T) {
	_, err := bli.Weights([]float64{1.5}, 0)
	assert.ErrorIs(t, err, bli.ErrGridSize, "grid size 0 must error ErrGridSize")

	_, err = bli.Weights(nil, 8)
	assert.ErrorIs(t, err, bli.ErrNoPositions, "empty positions must error ErrNoPositions")
}

// TestWeights_OnGridExactness verifies that an integer coordinate yields
// the exact one-hot row, for both even and odd grid lengths.
func TestWeights_OnGridExactness(t *testing.T) {
	for _, n := range []int{8, 9} {
		w, err := bli.Weights([]float64{3.0}, n)
		require.NoError(t, err, "construction must succeed for n=%d", n)

		row := w.RawRowView(0)
		for j := 0; j < n; j++ {
			want := 0.0
			if j == 3 {
				want = 1.0
			}
			assert.InDelta(t, want, row[j], 1e-12, "n=%d one-hot entry %d", n, j)
		}
	}
}

// TestWeights_EvenOneHot is the concrete even-grid scenario: n=8,
// x0=2.0 gives exactly [0,0,1,0,0,0,0,0].
func TestWeights_EvenOneHot(t *testing.T) {
	w, err := bli.Weights([]float64{2.0}, 8)
	require.NoError(t, err, "construction must succeed")
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 0, 0, 0}, w.RawRowView(0), "on-grid row must be exactly one-hot")
}

// TestWeights_PartitionOfUnity verifies that every weight row sums to 1:
// the kernel reconstructs constants exactly.
func TestWeights_PartitionOfUnity(t *testing.T) {
	x0 := []float64{0.37, 2.5, 5.0, 6.91}
	for _, n := range []int{8, 9} {
		w, err := bli.Weights(x0, n)
		require.NoError(t, err, "construction must succeed for n=%d", n)
		for i := range x0 {
			assert.InDelta(t, 1.0, floats.Sum(w.RawRowView(i)), 1e-10,
				"n=%d row for x0=%v must sum to 1", n, x0[i])
		}
	}
}

// TestWeights_BandLimitedExactness verifies that a single Fourier mode
// below the Nyquist index is reconstructed exactly at fractional
// coordinates, for both even and odd grid lengths.
func TestWeights_BandLimitedExactness(t *testing.T) {
	const (
		k     = 2
		phase = 0.3
	)
	for _, n := range []int{8, 9} {
		f := make([]float64, n)
		for j := range f {
			f[j] = math.Cos(2*math.Pi*float64(k)*float64(j)/float64(n) + phase)
		}
		x0 := []float64{0.1, 2.7, 6.25}
		w, err := bli.Weights(x0, n)
		require.NoError(t, err, "construction must succeed for n=%d", n)

		for i, p := range x0 {
			want := math.Cos(2*math.Pi*float64(k)*p/float64(n) + phase)
			got := floats.Dot(w.RawRowView(i), f)
			assert.InDelta(t, want, got, 1e-6, "n=%d x0=%v must match the analytic mode", n, p)
		}
	}
}

// TestWeights_StepMidpoint evaluates the odd-grid kernel against a
// hand computation: sampling the step [0,0,0,1,1,0,0] at x0=3.5 sums the
// two nearest weights, 2·sin(π/2)/(7·sin(π/14)).
func TestWeights_StepMidpoint(t *testing.T) {
	w, err := bli.Weights([]float64{3.5}, 7)
	require.NoError(t, err, "construction must succeed")

	f := []float64{0, 0, 0, 1, 1, 0, 0}
	got := floats.Dot(w.RawRowView(0), f)
	want := 2 * math.Sin(math.Pi/2) / (7 * math.Sin(math.Pi/14))
	assert.InDelta(t, want, got, 1e-12, "step midpoint must match the hand-evaluated kernel sum")
}

// TestWeightsComplex_OddEqualsReal verifies that odd grids have no
// unresolved Nyquist phase: the analytic kernel is purely real and
// equal to Weights.
func TestWeightsComplex_OddEqualsReal(t *testing.T) {
	x0 := []float64{1.3, 4.75}
	w, err := bli.Weights(x0, 7)
	require.NoError(t, err, "real construction must succeed")
	cw, err := bli.WeightsComplex(x0, 7)
	require.NoError(t, err, "complex construction must succeed")

	for i := range x0 {
		for j := 0; j < 7; j++ {
			assert.InDelta(t, w.At(i, j), real(cw.At(i, j)), 1e-15, "real parts must agree at (%d,%d)", i, j)
			assert.Zero(t, imag(cw.At(i, j)), "odd grid must have zero imaginary part at (%d,%d)", i, j)
		}
	}
}

// TestWeightsComplex_EvenStructure verifies the even-grid analytic
// kernel: real part equal to Weights, imaginary part cos(π·x0)·sin(π·j)/n,
// and exactly real one-hot rows for on-grid coordinates.
func TestWeightsComplex_EvenStructure(t *testing.T) {
	const n = 8
	x0 := []float64{2.41, 5.0}
	w, err := bli.Weights(x0, n)
	require.NoError(t, err, "real construction must succeed")
	cw, err := bli.WeightsComplex(x0, n)
	require.NoError(t, err, "complex construction must succeed")

	// Off-grid row: real parts agree, imaginary parts follow the formula.
	cp := math.Cos(math.Pi * x0[0])
	for j := 0; j < n; j++ {
		assert.InDelta(t, w.At(0, j), real(cw.At(0, j)), 1e-15, "real parts must agree at column %d", j)
		wantIm := cp * math.Sin(math.Pi*float64(j)) / n
		assert.InDelta(t, wantIm, imag(cw.At(0, j)), 1e-15, "imaginary part must follow the analytic term at column %d", j)
	}

	// On-grid row stays the exact real indicator.
	for j := 0; j < n; j++ {
		want := complex128(0)
		if j == 5 {
			want = 1
		}
		assert.Equal(t, want, cw.At(1, j), "on-grid complex row must be the exact real one-hot")
	}
}
