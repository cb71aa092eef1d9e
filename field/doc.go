// Package field provides the grid-side data model shared by every
// coupling strategy: grid shapes, dense real and complex fields, boolean
// masks, mask factories and point-layout helpers.
//
// What:
//
//   - Shape describes a 1-, 2- or 3-axis uniform grid and owns the
//     row-major stride arithmetic.
//   - Field / CField are dense real / complex values over a Shape,
//     stored in a single flat slice.
//   - Mask is a boolean field used to mark source, sensor or transducer
//     footprints on the grid.
//   - Disc, Ball and LineAperture build the standard transducer-region
//     masks; PointsOnCircle and FibonacciSphere lay out point arrays.
//   - SingleMode synthesizes a pure Fourier-mode field; Spectrum and
//     Synthesize round-trip a 1-D profile through its DFT coefficients.
//
// Why:
//
//   - The solver owns and mutates fields; coupling objects only read
//     them or return fresh field-shaped contributions. A minimal flat
//     container with explicit strides keeps that contract cheap and
//     unambiguous across 1–3 dimensions.
//
// Complexity:
//
//   - All field combinators are O(Size) time, O(1) extra memory.
//   - Mask factories are O(Size); point layouts are O(n).
//
// Errors:
//
//   - ErrRank: shape rank outside {1,2,3}.
//   - ErrAxisLength: non-positive axis length.
//   - ErrDataLength: backing slice length does not match the shape size.
//   - ErrShapeMismatch: two operands have different shapes.
//   - ErrBadRank: a helper was called on a shape of the wrong rank.
//   - ErrSpectrumLength: coefficient slice length is not n/2+1.
package field
