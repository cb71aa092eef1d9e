// Package coupling binds physical source and sensor geometry to the
// solver's grid through three interchangeable strategies: exact on-grid
// point coupling, band-limited off-grid interpolation, and distributed
// (extended-aperture) transducers.
//
// What:
//
//   - PointSources / PointSensors scatter and gather at exact integer
//     grid indices — the cheap path when sub-grid accuracy is not needed.
//   - BLISources / BLISensors accept fractional coordinates and couple
//     through precomputed per-axis periodic-sinc weight matrices,
//     contracted separably across 1–3 dimensions.
//   - DistributedTransducer drives (or reads) a continuous grid-shaped
//     weighting mask with a single scalar time signal.
//   - Every strategy satisfies the same two-operation contract: Source
//     (Inject a step-n contribution) and Sensor (Sample a field); all
//     also expose a boolean footprint via Mask.
//
// Why:
//
//   - The solver stays agnostic to the coupling strategy: it injects,
//     advances the field, then samples. The strategy is fixed at
//     construction, never dispatched per call.
//
// Complexity (per time step, d axes of length N, M points):
//
//   - Point coupling: O(M) beyond the O(∏N) zero fill of Inject.
//   - Band-limited: O(M·∏N) worst case, organized as d separable
//     passes; weight construction is O(M·ΣN) once.
//   - Transducer: O(∏N).
//
// Errors:
//
//   - ErrDimension: position-axis count differs from the grid rank.
//   - ErrPositionLengths: per-axis coordinate sequences differ in length.
//   - ErrSignalRows: signal table rows differ from the point count.
//   - ErrShapeMismatch: sampled field shape differs from the grid shape.
//   - ErrStepRange: time index outside the signal table.
//   - ErrNilMask: transducer constructed without a weighting mask.
//   - ErrUnsupportedAngle: tilted line transducers are not implemented.
//
// Out-of-range coordinates are intentionally not validated: the periodic
// kernel wraps them into unspecified weights, and the point primitives
// follow slice-index semantics.
package coupling
