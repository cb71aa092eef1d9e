package field

import "math"

// Mask is a boolean field marking a set of grid cells: a source or
// sensor footprint, or an extended transducer aperture.
type Mask struct {
	Shape Shape
	Data  []bool
}

// NewMask returns an all-false mask over s.
func NewMask(s Shape) *Mask {
	return &Mask{Shape: s, Data: make([]bool, s.Size())}
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	c := 0
	for _, v := range m.Data {
		if v {
			c++
		}
	}
	return c
}

// Where returns the flat offsets of all marked cells, in row-major order.
func (m *Mask) Where() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m.Data {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// ToField converts the mask to a 0/1 real field.
func (m *Mask) ToField() *Field {
	out := Zeros(m.Shape)
	for i, v := range m.Data {
		if v {
			out.Data[i] = 1
		}
	}
	return out
}

// Disc marks every cell of a 2-D grid strictly inside the circle of the
// given radius around centre. Returns ErrBadRank unless s has rank 2.
func Disc(s Shape, radius float64, centre [2]float64) (*Mask, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Rank() != 2 {
		return nil, ErrBadRank
	}
	m := NewMask(s)
	for x := 0; x < s[0]; x++ {
		for y := 0; y < s[1]; y++ {
			dx, dy := float64(x)-centre[0], float64(y)-centre[1]
			if math.Sqrt(dx*dx+dy*dy) < radius {
				m.Data[x*s[1]+y] = true
			}
		}
	}
	return m, nil
}

// Ball marks every cell of a 3-D grid strictly inside the sphere of the
// given radius around centre. Returns ErrBadRank unless s has rank 3.
func Ball(s Shape, radius float64, centre [3]float64) (*Mask, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Rank() != 3 {
		return nil, ErrBadRank
	}
	m := NewMask(s)
	for x := 0; x < s[0]; x++ {
		for y := 0; y < s[1]; y++ {
			for z := 0; z < s[2]; z++ {
				dx := float64(x) - centre[0]
				dy := float64(y) - centre[1]
				dz := float64(z) - centre[2]
				if math.Sqrt(dx*dx+dy*dy+dz*dz) < radius {
					m.Data[(x*s[1]+y)*s[2]+z] = true
				}
			}
		}
	}
	return m, nil
}

// LineAperture marks a width-cell horizontal segment centred on the
// second axis of a 2-D grid, at the given row of the first axis. This is
// the footprint of a flat line transducer. Returns ErrBadRank unless s
// has rank 2; the row must lie on the grid.
func LineAperture(s Shape, row, width int) (*Mask, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Rank() != 2 {
		return nil, ErrBadRank
	}
	if row < 0 || row >= s[0] || width < 1 || width > s[1] {
		return nil, ErrAxisLength
	}
	m := NewMask(s)
	start := (s[1] - width) / 2
	end := (s[1] + width) / 2
	for y := start; y < end; y++ {
		m.Data[row*s[1]+y] = true
	}
	return m, nil
}
