package signal

import (
	"errors"
	"math"
)

// Sentinel errors for signal tables.
var (
	// ErrTableSize indicates a negative point or step count.
	ErrTableSize = errors.New("signal: point and step counts must be non-negative")
	// ErrRaggedRows indicates input rows of differing lengths.
	ErrRaggedRows = errors.New("signal: all rows must have the same length")
	// ErrDataLength indicates a backing slice length other than points × steps.
	ErrDataLength = errors.New("signal: data length does not match points × steps")
)

// Table is a dense points × steps drive-signal table, stored row-major.
// Row p is the time series driving source point p.
type Table struct {
	points int
	steps  int
	data   []float64
}

// NewTable returns a zero-valued points × steps table.
func NewTable(points, steps int) (*Table, error) {
	if points < 0 || steps < 0 {
		return nil, ErrTableSize
	}
	return &Table{points: points, steps: steps, data: make([]float64, points*steps)}, nil
}

// NewTableFrom wraps a flat row-major slice as a points × steps table.
// The slice is used directly, not copied.
func NewTableFrom(points, steps int, data []float64) (*Table, error) {
	if points < 0 || steps < 0 {
		return nil, ErrTableSize
	}
	if len(data) != points*steps {
		return nil, ErrDataLength
	}
	return &Table{points: points, steps: steps, data: data}, nil
}

// FromRows builds a table from one time series per source point.
// All rows must share the same length.
func FromRows(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return &Table{}, nil
	}
	steps := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != steps {
			return nil, ErrRaggedRows
		}
	}
	t := &Table{points: len(rows), steps: steps, data: make([]float64, len(rows)*steps)}
	for p, r := range rows {
		copy(t.data[p*steps:(p+1)*steps], r)
	}
	return t, nil
}

// Points returns the number of source points (rows).
func (t *Table) Points() int {
	if t == nil {
		return 0
	}
	return t.points
}

// Steps returns the number of time steps (columns).
func (t *Table) Steps() int {
	if t == nil {
		return 0
	}
	return t.steps
}

// Empty reports whether the table holds no samples. A nil table is empty.
func (t *Table) Empty() bool { return t.Points() == 0 || t.Steps() == 0 }

// At returns the value driving point p at step n.
// Indices follow slice semantics: out-of-range access panics.
func (t *Table) At(p, n int) float64 { return t.data[p*t.steps+n] }

// Set stores v as the value driving point p at step n.
func (t *Table) Set(p, n int, v float64) { t.data[p*t.steps+n] = v }

// Row returns the time series of point p. The slice aliases the table.
func (t *Table) Row(p int) []float64 { return t.data[p*t.steps : (p+1)*t.steps] }

// Column copies column n into dst, which must have length Points.
func (t *Table) Column(n int, dst []float64) {
	for p := range dst {
		dst[p] = t.data[p*t.steps+n]
	}
}

// Raw returns a copy of the flat row-major backing data.
func (t *Table) Raw() []float64 {
	if t == nil {
		return nil
	}
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Sine returns steps samples of amp·sin(2π·freq·t + phase) on the time
// grid t = n·dt.
func Sine(steps int, dt, freq, amp, phase float64) []float64 {
	out := make([]float64, steps)
	for n := range out {
		out[n] = amp * math.Sin(2*math.Pi*freq*float64(n)*dt+phase)
	}
	return out
}

// ToneBurst returns steps samples of a Gaussian-windowed sinusoid of the
// given frequency spanning the given number of cycles; samples beyond
// the burst are zero. The window's ±3σ span covers the burst.
func ToneBurst(steps int, dt, freq float64, cycles int, amp float64) []float64 {
	out := make([]float64, steps)
	burst := float64(cycles) / freq
	sigma := burst / 6
	for n := range out {
		t := float64(n) * dt
		if t > burst {
			break
		}
		env := math.Exp(-0.5 * ((t - burst/2) / sigma) * ((t - burst/2) / sigma))
		out[n] = amp * env * math.Sin(2*math.Pi*freq*t)
	}
	return out
}
