package field

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// SingleMode synthesizes the pure Fourier-mode field
//
//	f(i₁,…,i_d) = amp · cos(2π·Σ_d k[d]·i_d/N_d + phase)
//
// over s. Such a field lies exactly in the grid's discrete Fourier basis
// whenever every |k[d]| is at most the axis Nyquist index, which makes it
// the reference input for band-limited interpolation checks. Returns
// ErrBadRank if len(k) differs from the rank.
func SingleMode(s Shape, k []int, amp, phase float64) (*Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(k) != s.Rank() {
		return nil, ErrBadRank
	}
	out := Zeros(s)
	strides := s.Strides()
	for flat := range out.Data {
		arg := phase
		rem := flat
		for d := range s {
			idx := rem / strides[d]
			rem %= strides[d]
			arg += 2 * math.Pi * float64(k[d]) * float64(idx) / float64(s[d])
		}
		out.Data[flat] = amp * math.Cos(arg)
	}
	return out, nil
}

// Spectrum returns the n/2+1 non-redundant DFT coefficients of a real
// 1-D profile, in gonum's unnormalized convention.
func Spectrum(seq []float64) []complex128 {
	ft := fourier.NewFFT(len(seq))
	return ft.Coefficients(nil, seq)
}

// Synthesize inverts Spectrum, returning the length-n real profile whose
// DFT coefficients are coeff. Returns ErrSpectrumLength unless
// len(coeff) == n/2+1.
func Synthesize(coeff []complex128, n int) ([]float64, error) {
	if len(coeff) != n/2+1 {
		return nil, ErrSpectrumLength
	}
	ft := fourier.NewFFT(n)
	seq := ft.Sequence(make([]float64, n), coeff)
	// gonum's round trip scales by n; undo it here.
	floats.Scale(1/float64(n), seq)
	return seq, nil
}
