package coupling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridwave/bli"
	"github.com/katalvlaran/gridwave/field"
	"github.com/katalvlaran/gridwave/signal"
)

// BLISensors samples a field at fractional coordinates through
// band-limited interpolation. One periodic-sinc weight matrix per axis
// is precomputed at construction; sampling contracts them sequentially
// against the field, axis by axis, exploiting the kernel's separability.
type BLISensors struct {
	shape     field.Shape
	positions [][]float64
	w         []*mat.Dense     // per-axis real weights, points × N_axis
	cw        [][][]complex128 // per-axis complex weight rows, nil unless IncludeImag
}

var (
	_ Sensor = (*BLISensors)(nil)
	_ Masker = (*BLISensors)(nil)
	_ Source = (*BLISources)(nil)
	_ Masker = (*BLISources)(nil)
)

// NewBLISensors builds an off-grid sensor group. positions holds one
// real coordinate sequence per grid axis, each value in [0, N_axis);
// values outside are not validated and sample unspecified locations.
func NewBLISensors(shape field.Shape, positions [][]float64, opts BLIOptions) (*BLISensors, error) {
	w, cw, err := axisWeights(shape, positions, opts)
	if err != nil {
		return nil, err
	}
	return &BLISensors{shape: shape, positions: positions, w: w, cw: cw}, nil
}

// Points returns the number of sensor points.
func (s *BLISensors) Points() int { return len(s.positions[0]) }

// Sample reconstructs the band-limited field value at every sensor
// coordinate. Sampling is linear in the field and exact whenever a
// coordinate coincides with a grid node.
func (s *BLISensors) Sample(f *field.Field) ([]float64, error) {
	if !f.Shape.Equal(s.shape) {
		return nil, ErrShapeMismatch
	}
	out := make([]float64, s.Points())
	switch s.shape.Rank() {
	case 1:
		for i := range out {
			out[i] = floats.Dot(s.w[0].RawRowView(i), f.Data)
		}
	case 2:
		nx, ny := s.shape[0], s.shape[1]
		tmp := make([]float64, ny)
		for i := range out {
			wx := s.w[0].RawRowView(i)
			// Contract axis 0: tmp[y] = Σ_x wx[x]·f[x,y].
			zero(tmp)
			for x := 0; x < nx; x++ {
				floats.AddScaled(tmp, wx[x], f.Data[x*ny:(x+1)*ny])
			}
			out[i] = floats.Dot(tmp, s.w[1].RawRowView(i))
		}
	case 3:
		nx, ny, nz := s.shape[0], s.shape[1], s.shape[2]
		plane := make([]float64, ny*nz)
		line := make([]float64, nz)
		for i := range out {
			wx := s.w[0].RawRowView(i)
			wy := s.w[1].RawRowView(i)
			// Contract axis 0 into a y-z plane, then axis 1 into a z-line.
			zero(plane)
			for x := 0; x < nx; x++ {
				floats.AddScaled(plane, wx[x], f.Data[x*ny*nz:(x+1)*ny*nz])
			}
			zero(line)
			for y := 0; y < ny; y++ {
				floats.AddScaled(line, wy[y], plane[y*nz:(y+1)*nz])
			}
			out[i] = floats.Dot(line, s.w[2].RawRowView(i))
		}
	}
	return out, nil
}

// SampleComplex reconstructs the band-limited value of a complex field
// at every sensor coordinate. With IncludeImag set at construction the
// analytic kernel is used; otherwise the real kernel is applied to the
// real and imaginary parts independently.
func (s *BLISensors) SampleComplex(f *field.CField) ([]complex128, error) {
	if !f.Shape.Equal(s.shape) {
		return nil, ErrShapeMismatch
	}
	if s.cw == nil {
		re, err := s.Sample(f.Real())
		if err != nil {
			return nil, err
		}
		im, err := s.Sample(f.Imag())
		if err != nil {
			return nil, err
		}
		out := make([]complex128, len(re))
		for i := range out {
			out[i] = complex(re[i], im[i])
		}
		return out, nil
	}
	out := make([]complex128, s.Points())
	switch s.shape.Rank() {
	case 1:
		for i := range out {
			out[i] = dotU(s.cw[0][i], f.Data)
		}
	case 2:
		nx, ny := s.shape[0], s.shape[1]
		tmp := make([]complex128, ny)
		for i := range out {
			wx := s.cw[0][i]
			zeroC(tmp)
			for x := 0; x < nx; x++ {
				cmplxs.AddScaled(tmp, wx[x], f.Data[x*ny:(x+1)*ny])
			}
			out[i] = dotU(tmp, s.cw[1][i])
		}
	case 3:
		nx, ny, nz := s.shape[0], s.shape[1], s.shape[2]
		plane := make([]complex128, ny*nz)
		line := make([]complex128, nz)
		for i := range out {
			wx, wy := s.cw[0][i], s.cw[1][i]
			zeroC(plane)
			for x := 0; x < nx; x++ {
				cmplxs.AddScaled(plane, wx[x], f.Data[x*ny*nz:(x+1)*ny*nz])
			}
			zeroC(line)
			for y := 0; y < ny; y++ {
				cmplxs.AddScaled(line, wy[y], plane[y*nz:(y+1)*nz])
			}
			out[i] = dotU(line, s.cw[2][i])
		}
	}
	return out, nil
}

// Mask marks the grid node nearest each sensor coordinate. The true
// support of band-limited coupling is global; the mask is a footprint
// for visualization, not the interpolation stencil.
func (s *BLISensors) Mask() *field.Mask {
	return nearestMask(s.shape, s.positions)
}

// BLISources injects per-point drive signals at fractional coordinates:
// the adjoint of band-limited sampling, scattering each signal value
// through the separable outer product of the per-axis weight rows.
type BLISources struct {
	shape     field.Shape
	positions [][]float64
	signals   *signal.Table
	dt        float64
	w         []*mat.Dense
}

// NewBLISources builds an off-grid source group. positions holds one
// real coordinate sequence per grid axis; signals row p drives point p
// (a nil or empty table is the valid "no sources" case, in which case
// positions may also be empty).
func NewBLISources(shape field.Shape, positions [][]float64, signals *signal.Table, dt float64) (*BLISources, error) {
	if signals.Empty() && len(positions) > 0 && len(positions[0]) == 0 {
		if err := validGrid(shape, len(positions)); err != nil {
			return nil, err
		}
		return &BLISources{shape: shape, positions: positions, dt: dt}, nil
	}
	w, _, err := axisWeights(shape, positions, DefaultBLIOptions())
	if err != nil {
		return nil, err
	}
	if !signals.Empty() && signals.Points() != len(positions[0]) {
		return nil, ErrSignalRows
	}
	return &BLISources{shape: shape, positions: positions, signals: signals, dt: dt, w: w}, nil
}

// Dt returns the time step the drive signals are sampled on.
func (s *BLISources) Dt() float64 { return s.dt }

// Points returns the number of source points.
func (s *BLISources) Points() int { return len(s.positions[0]) }

// Inject returns the field-shaped contribution of time step n: each
// point's signal value spread over the grid by its band-limited kernel.
// An empty table yields an all-zero field.
func (s *BLISources) Inject(n int) (*field.Field, error) {
	out := field.Zeros(s.shape)
	if s.signals.Empty() {
		return out, nil
	}
	if n < 0 || n >= s.signals.Steps() {
		return nil, ErrStepRange
	}
	switch s.shape.Rank() {
	case 1:
		for p := 0; p < s.Points(); p++ {
			floats.AddScaled(out.Data, s.signals.At(p, n), s.w[0].RawRowView(p))
		}
	case 2:
		nx, ny := s.shape[0], s.shape[1]
		for p := 0; p < s.Points(); p++ {
			v := s.signals.At(p, n)
			wx := s.w[0].RawRowView(p)
			wy := s.w[1].RawRowView(p)
			for x := 0; x < nx; x++ {
				floats.AddScaled(out.Data[x*ny:(x+1)*ny], v*wx[x], wy)
			}
		}
	case 3:
		nx, ny, nz := s.shape[0], s.shape[1], s.shape[2]
		for p := 0; p < s.Points(); p++ {
			v := s.signals.At(p, n)
			wx := s.w[0].RawRowView(p)
			wy := s.w[1].RawRowView(p)
			wz := s.w[2].RawRowView(p)
			for x := 0; x < nx; x++ {
				for y := 0; y < ny; y++ {
					floats.AddScaled(out.Data[(x*ny+y)*nz:(x*ny+y+1)*nz], v*wx[x]*wy[y], wz)
				}
			}
		}
	}
	return out, nil
}

// Mask marks the grid node nearest each source coordinate, as for
// BLISensors.
func (s *BLISources) Mask() *field.Mask {
	return nearestMask(s.shape, s.positions)
}

// axisWeights validates the grid/position layout and precomputes one
// weight matrix per axis (plus complex rows when requested).
func axisWeights(shape field.Shape, positions [][]float64, opts BLIOptions) ([]*mat.Dense, [][][]complex128, error) {
	if err := validGrid(shape, len(positions)); err != nil {
		return nil, nil, err
	}
	num := len(positions[0])
	for _, axis := range positions[1:] {
		if len(axis) != num {
			return nil, nil, ErrPositionLengths
		}
	}
	w := make([]*mat.Dense, shape.Rank())
	var cw [][][]complex128
	if opts.IncludeImag {
		cw = make([][][]complex128, shape.Rank())
	}
	for d := range w {
		wd, err := bli.Weights(positions[d], shape[d])
		if err != nil {
			return nil, nil, fmt.Errorf("coupling: axis %d weights: %w", d, err)
		}
		w[d] = wd
		if opts.IncludeImag {
			cwd, err := bli.WeightsComplex(positions[d], shape[d])
			if err != nil {
				return nil, nil, fmt.Errorf("coupling: axis %d complex weights: %w", d, err)
			}
			cw[d] = cdenseRows(cwd)
		}
	}
	return w, cw, nil
}

// cdenseRows copies a CDense into per-row slices for contraction.
func cdenseRows(m *mat.CDense) [][]complex128 {
	r, c := m.Dims()
	rows := make([][]complex128, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]complex128, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// nearestMask marks the nearest grid node of every fractional position,
// clamped onto the grid.
func nearestMask(shape field.Shape, positions [][]float64) *field.Mask {
	m := field.NewMask(shape)
	strides := shape.Strides()
	for p := 0; p < len(positions[0]); p++ {
		off := 0
		for d := range positions {
			i := int(math.Round(positions[d][p]))
			if i < 0 {
				i = 0
			}
			if i >= shape[d] {
				i = shape[d] - 1
			}
			off += i * strides[d]
		}
		m.Data[off] = true
	}
	return m
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

func zeroC(s []complex128) {
	for i := range s {
		s[i] = 0
	}
}

// dotU is the unconjugated dot product Σ_j a[j]·b[j]. Interpolation
// contracts kernel against field; no inner-product conjugation applies.
func dotU(a, b []complex128) complex128 {
	var acc complex128
	for j := range a {
		acc += a[j] * b[j]
	}
	return acc
}
