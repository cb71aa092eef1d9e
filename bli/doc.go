// Package bli computes band-limited interpolation (periodic sinc)
// weight matrices: the coefficients that reconstruct a periodic,
// Nyquist-limited grid signal at arbitrary fractional coordinates.
//
// What:
//
//   - Weights builds, for M continuous positions along one axis of an
//     N-cell periodic grid, the dense M×N matrix W such that
//     Σ_j W[i,j]·f[j] is the band-limited value of f at position i.
//   - WeightsComplex is the analytic-kernel variant that retains the
//     phase of the even-N Nyquist mode, for complex wavefields.
//
// Why:
//
//   - Pseudospectral wave solvers represent fields in the grid's
//     discrete Fourier basis; periodic sinc interpolation is exact for
//     every signal that basis can hold, at the price of global support
//     (every grid point contributes to every sampled value).
//
// Algorithm:
//
//   - Even N uses the Dirichlet kernel sin(πΔ)/(N·tan(πΔ/N)) with a
//     correction for the single Nyquist mode, whose phase an even-length
//     grid cannot resolve; odd N uses sin(πΔ)/(N·sin(πΔ/N)) directly.
//   - A position that coincides exactly with a grid node is the 0/0
//     indeterminate form of both kernels; that row is replaced by the
//     exact one-hot indicator, so on-grid sampling is exact and never
//     produces NaN.
//
// Complexity:
//
//   - O(M·N) time and memory per axis, paid once at construction.
//
// Errors:
//
//   - ErrGridSize: grid length below 1.
//   - ErrNoPositions: empty position sequence.
package bli
