// Package bli: sentinel errors.
package bli

import "errors"

// Sentinel errors for kernel construction.
var (
	// ErrGridSize indicates a grid axis length below 1.
	ErrGridSize = errors.New("bli: grid size must be at least 1")
	// ErrNoPositions indicates an empty position sequence.
	ErrNoPositions = errors.New("bli: at least one position is required")
)
