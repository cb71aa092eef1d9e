package bli

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Weights returns the M×N periodic-sinc interpolation matrix for the M
// positions x0 on an N-cell periodic grid: row i holds the coefficients
// whose dot product with the grid samples reconstructs the band-limited
// value at x0[i].
//
// Positions are expected in [0, N); values outside are not validated and
// yield unspecified weights. A position exactly on a grid node produces
// the exact one-hot row for that node.
func Weights(x0 []float64, n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrGridSize
	}
	if len(x0) == 0 {
		return nil, ErrNoPositions
	}
	w := mat.NewDense(len(x0), n, nil)
	nf := float64(n)
	for i, p := range x0 {
		row := w.RawRowView(i)
		if j, ok := gridIndex(p, n); ok {
			// On-grid coincidence: both kernel branches are 0/0 here.
			// The exact indicator row replaces them outright.
			row[j] = 1
			continue
		}
		if n%2 == 0 {
			sp := math.Sin(math.Pi * p)
			for j := range row {
				dx := p - float64(j)
				row[j] = math.Sin(math.Pi*dx)/math.Tan(math.Pi*dx/nf)/nf -
					sp*math.Sin(math.Pi*float64(j))/nf
			}
		} else {
			for j := range row {
				dx := p - float64(j)
				row[j] = math.Sin(math.Pi*dx) / math.Sin(math.Pi*dx/nf) / nf
			}
		}
	}
	return w, nil
}

// WeightsComplex is the analytic-kernel variant of Weights. On even N it
// adds i·cos(π·x0)·sin(π·x)/N, restoring the phase of the Nyquist mode
// for phase-carrying (complex) wavefields; on odd N every mode already
// has a resolvable phase and the result equals Weights with zero
// imaginary part. One-hot rows stay exactly real.
func WeightsComplex(x0 []float64, n int) (*mat.CDense, error) {
	if n < 1 {
		return nil, ErrGridSize
	}
	if len(x0) == 0 {
		return nil, ErrNoPositions
	}
	w := mat.NewCDense(len(x0), n, nil)
	nf := float64(n)
	for i, p := range x0 {
		if j, ok := gridIndex(p, n); ok {
			w.Set(i, j, 1)
			continue
		}
		if n%2 == 0 {
			sp := math.Sin(math.Pi * p)
			cp := math.Cos(math.Pi * p)
			for j := 0; j < n; j++ {
				dx := p - float64(j)
				sj := math.Sin(math.Pi * float64(j))
				re := math.Sin(math.Pi*dx)/math.Tan(math.Pi*dx/nf)/nf - sp*sj/nf
				w.Set(i, j, complex(re, cp*sj/nf))
			}
		} else {
			for j := 0; j < n; j++ {
				dx := p - float64(j)
				re := math.Sin(math.Pi*dx) / math.Sin(math.Pi*dx/nf) / nf
				w.Set(i, j, complex(re, 0))
			}
		}
	}
	return w, nil
}

// gridIndex reports whether p coincides exactly with a grid node of an
// n-cell axis, and which one. Exact equality is intentional: the kernel
// is smooth arbitrarily close to a node and singular only at it.
func gridIndex(p float64, n int) (int, bool) {
	if p != math.Trunc(p) {
		return 0, false
	}
	j := int(p)
	if j < 0 || j >= n {
		return 0, false
	}
	return j, true
}
