// Package gridwave couples physical source and sensor locations — which
// generally do not coincide with grid points — to the uniform grid of a
// pseudospectral acoustic wave solver.
//
// 🚀 What is gridwave?
//
//	A small, focused library that brings together:
//		• Band-limited (periodic sinc) interpolation kernels, exact at
//		  grid nodes and for any signal the grid's Fourier basis can hold
//		• Separable 1-/2-/3-D off-grid sampling and injection built from
//		  precomputed per-axis weight matrices
//		• Exact on-grid point sources and sensors for the common case
//		• Distributed (extended-aperture) transducers driven by a single
//		  scalar signal over a continuous spatial mask
//
// ✨ Why choose gridwave?
//
//   - Numerically careful – the on-grid coincidence case is handled
//     exactly, never through a near-singular division
//   - Precompute once – weight matrices are built at construction and
//     reused read-only for every simulation step
//   - Solver-agnostic – the library holds no simulation state; it is
//     invoked once per time step with the field the solver owns
//
// Under the hood, everything is organized under four subpackages:
//
//	bli/      — periodic sinc (band-limited interpolation) weight matrices
//	coupling/ — the user-facing sources, sensors and transducers
//	field/    — grid shapes, dense fields, boolean masks, layout helpers
//	signal/   — dense time-indexed drive-signal tables and waveforms
//
// Quick ASCII example (a sensor at x0 = 2.5 between grid nodes):
//
//	f[0]──f[1]──f[2]──╳──f[3]──f[4]   value at ╳ = Σ_j W[j]·f[j]
//
// The per-step control flow is owned by the solver: inject the source
// contribution, advance the field, then sample each sensor.
package gridwave
