package field

import "math"

// CircleOptions tunes PointsOnCircle.
//
// Fields:
//   - StartAngle — angular offset of the first point, radians.
//   - MaxAngle   — arc to cover; 2π for a full circle.
//   - RoundToGrid — truncate coordinates to integer grid nodes, for use
//     with on-grid point coupling. Leave false for off-grid positions.
type CircleOptions struct {
	StartAngle  float64
	MaxAngle    float64
	RoundToGrid bool
}

// DefaultCircleOptions returns a full circle starting at angle 0 with
// coordinates truncated to grid nodes.
func DefaultCircleOptions() CircleOptions {
	return CircleOptions{StartAngle: 0, MaxAngle: 2 * math.Pi, RoundToGrid: true}
}

// PointsOnCircle lays out n points on a circular arc of the given radius
// around centre, evenly spaced in angle with the end angle excluded.
// Returns the per-axis coordinate sequences (xs, ys).
func PointsOnCircle(n int, radius float64, centre [2]float64, opts CircleOptions) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		theta := opts.StartAngle + opts.MaxAngle*float64(i)/float64(n)
		xs[i] = radius*math.Cos(theta) + centre[0]
		ys[i] = radius*math.Sin(theta) + centre[1]
		if opts.RoundToGrid {
			xs[i] = math.Trunc(xs[i])
			ys[i] = math.Trunc(ys[i])
		}
	}
	return xs, ys
}

// FibonacciSphere lays out n near-evenly distributed points on the
// sphere of the given radius around centre, using the golden-angle
// spiral. With roundToGrid set, coordinates are truncated to integer
// grid nodes. Returns the per-axis coordinate sequences (xs, ys, zs).
func FibonacciSphere(n int, radius float64, centre [3]float64, roundToGrid bool) (xs, ys, zs []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	zs = make([]float64, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		// y runs from 1 to -1; the ring radius follows the unit sphere.
		y := 1 - 2*float64(i)/float64(n-1)
		ring := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		xs[i] = radius*math.Cos(theta)*ring + centre[0]
		ys[i] = radius*y + centre[1]
		zs[i] = radius*math.Sin(theta)*ring + centre[2]
		if roundToGrid {
			xs[i] = math.Trunc(xs[i])
			ys[i] = math.Trunc(ys[i])
			zs[i] = math.Trunc(zs[i])
		}
	}
	return xs, ys, zs
}

// Round converts integer-valued coordinates (e.g. from PointsOnCircle
// with RoundToGrid) to grid indices for the point-coupling primitives.
func Round(xs []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(math.Round(x))
	}
	return out
}
