package field

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Field is a dense real-valued field over a Shape, stored row-major in
// a single flat slice. The solver owns and mutates fields; coupling
// objects only read them or return fresh contributions.
type Field struct {
	Shape Shape
	Data  []float64
}

// Zeros returns a zero-valued field over s. The shape is not validated;
// callers constructing shapes from user input should call s.Validate first.
func Zeros(s Shape) *Field {
	return &Field{Shape: s, Data: make([]float64, s.Size())}
}

// NewField wraps data as a field over s. The slice is used directly,
// not copied. Returns ErrDataLength if the length does not match.
func NewField(s Shape, data []float64) (*Field, error) {
	if len(data) != s.Size() {
		return nil, ErrDataLength
	}
	return &Field{Shape: s, Data: data}, nil
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	out := Zeros(f.Shape)
	copy(out.Data, f.Data)
	return out
}

// At returns the value at the given multi-index.
func (f *Field) At(ix ...int) float64 { return f.Data[f.Shape.Offset(ix...)] }

// Set stores v at the given multi-index.
func (f *Field) Set(v float64, ix ...int) { f.Data[f.Shape.Offset(ix...)] = v }

// Add accumulates g into f. Returns ErrShapeMismatch on shape disagreement.
func (f *Field) Add(g *Field) error { return f.AddScaled(1, g) }

// AddScaled accumulates a·g into f.
// Returns ErrShapeMismatch on shape disagreement.
func (f *Field) AddScaled(a float64, g *Field) error {
	if !f.Shape.Equal(g.Shape) {
		return ErrShapeMismatch
	}
	floats.AddScaled(f.Data, a, g.Data)
	return nil
}

// Scale multiplies every value by a.
func (f *Field) Scale(a float64) { floats.Scale(a, f.Data) }

// CField is the complex-valued counterpart of Field, used when the
// sampled wavefield carries a phase (e.g. a propagating rather than a
// standing wave).
type CField struct {
	Shape Shape
	Data  []complex128
}

// CZeros returns a zero-valued complex field over s.
func CZeros(s Shape) *CField {
	return &CField{Shape: s, Data: make([]complex128, s.Size())}
}

// NewCField wraps data as a complex field over s. The slice is used
// directly, not copied. Returns ErrDataLength if the length does not match.
func NewCField(s Shape, data []complex128) (*CField, error) {
	if len(data) != s.Size() {
		return nil, ErrDataLength
	}
	return &CField{Shape: s, Data: data}, nil
}

// At returns the value at the given multi-index.
func (f *CField) At(ix ...int) complex128 { return f.Data[f.Shape.Offset(ix...)] }

// Set stores v at the given multi-index.
func (f *CField) Set(v complex128, ix ...int) { f.Data[f.Shape.Offset(ix...)] = v }

// AddScaled accumulates a·g into f.
// Returns ErrShapeMismatch on shape disagreement.
func (f *CField) AddScaled(a complex128, g *CField) error {
	if !f.Shape.Equal(g.Shape) {
		return ErrShapeMismatch
	}
	cmplxs.AddScaled(f.Data, a, g.Data)
	return nil
}

// Real returns a copy of the real part of f.
func (f *CField) Real() *Field {
	out := Zeros(f.Shape)
	for i, v := range f.Data {
		out.Data[i] = real(v)
	}
	return out
}

// Imag returns a copy of the imaginary part of f.
func (f *CField) Imag() *Field {
	out := Zeros(f.Shape)
	for i, v := range f.Data {
		out.Data[i] = imag(v)
	}
	return out
}

// Complexify widens a real field into a complex one with zero
// imaginary part.
func Complexify(f *Field) *CField {
	out := CZeros(f.Shape)
	for i, v := range f.Data {
		out.Data[i] = complex(v, 0)
	}
	return out
}
