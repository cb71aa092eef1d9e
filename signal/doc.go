// Package signal provides the dense time-indexed drive-signal tables
// consumed by sources, plus standard waveform constructors.
//
// What:
//
//   - Table is a dense points × steps matrix: row p holds the drive
//     signal of source point p, column n the values injected at discrete
//     time step n. An empty table is the valid "no sources" case.
//   - Sine and ToneBurst build the usual continuous-wave and
//     Gaussian-windowed drive signals.
//
// Why:
//
//   - The solver looks up one column per time step; a flat row-major
//     table makes that lookup an O(points) stride walk with no
//     per-step allocation beyond the caller's destination slice.
//
// Errors:
//
//   - ErrTableSize: negative point or step count.
//   - ErrRaggedRows: rows of differing lengths.
//   - ErrDataLength: backing slice length does not match points × steps.
package signal
