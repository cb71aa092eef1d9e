// Package field: core Shape type and sentinel errors.
package field

import "errors"

// Sentinel errors for field operations.
var (
	// ErrRank indicates a shape rank outside {1, 2, 3}.
	ErrRank = errors.New("field: shape rank must be 1, 2 or 3")
	// ErrAxisLength indicates a non-positive axis length.
	ErrAxisLength = errors.New("field: every axis length must be positive")
	// ErrDataLength indicates a backing slice whose length differs from the shape size.
	ErrDataLength = errors.New("field: data length does not match shape size")
	// ErrShapeMismatch indicates two operands with different shapes.
	ErrShapeMismatch = errors.New("field: shapes differ")
	// ErrBadRank indicates a helper invoked on a shape of the wrong rank.
	ErrBadRank = errors.New("field: helper requires a different shape rank")
	// ErrSpectrumLength indicates a coefficient slice of length other than n/2+1.
	ErrSpectrumLength = errors.New("field: coefficient length must be n/2+1")
)

// Shape is the size of a uniform computational grid along each axis.
// Rank 1, 2 and 3 are supported; a Shape is fixed for the lifetime of
// any object built on top of it.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the total number of grid cells, i.e. the product of all
// axis lengths. Size of an invalid shape is unspecified.
func (s Shape) Size() int {
	size := 1
	for _, n := range s {
		size *= n
	}
	return size
}

// Strides returns the row-major stride of every axis: the distance in
// flat-slice elements between neighbours along that axis.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for d := len(s) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= s[d]
	}
	return strides
}

// Offset converts a multi-index into a flat row-major offset.
// The index count must equal the rank; components are not range-checked,
// mirroring slice-index semantics.
func (s Shape) Offset(ix ...int) int {
	strides := s.Strides()
	off := 0
	for d, i := range ix {
		off += i * strides[d]
	}
	return off
}

// Equal reports whether two shapes have the same rank and axis lengths.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for d := range s {
		if s[d] != o[d] {
			return false
		}
	}
	return true
}

// Validate returns ErrRank or ErrAxisLength for malformed shapes,
// nil otherwise.
func (s Shape) Validate() error {
	if len(s) < 1 || len(s) > 3 {
		return ErrRank
	}
	for _, n := range s {
		if n < 1 {
			return ErrAxisLength
		}
	}
	return nil
}
