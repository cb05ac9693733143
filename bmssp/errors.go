// This file declares the sentinel errors returned by the bmssp package, and
// a couple of small wrapping helpers used across graph.go, basecase.go,
// pivots.go, dijkstra.go and bmssp.go.
package bmssp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the bmssp package.
var (
	// ErrInvalidIndex indicates a vertex argument outside [0, n).
	ErrInvalidIndex = errors.New("bmssp: vertex index out of range")

	// ErrInvalidArgument indicates a malformed parameter: level < 0,
	// B < 0, or a negative edge weight. WithParams (k or t < 1) and
	// WithCapacityClamp (shift < 1) panic with this error's message
	// instead of returning it; NewBatchHeap clamps M < 1 to 1 and reports
	// nothing.
	ErrInvalidArgument = errors.New("bmssp: invalid argument")

	// ErrCapacityExceeded indicates the internal shift 1 << ((level-1)*t)
	// would overflow the configured clamp: integer overflow of a batch
	// size is a caller-visible condition, not something to paper over.
	ErrCapacityExceeded = errors.New("bmssp: batch size shift would overflow")
)

// invalidIndexf wraps ErrInvalidIndex with the offending vertex and bound,
// mirroring dijkstra.Dijkstra's fmt.Errorf("%w: ...") wrapping of
// ErrNegativeWeight with edge context.
func invalidIndexf(v, n int) error {
	return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidIndex, v, n)
}

// invalidArgumentf wraps ErrInvalidArgument with a human-readable detail.
func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// capacityExceededf wraps ErrCapacityExceeded with a human-readable detail.
func capacityExceededf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCapacityExceeded, fmt.Sprintf(format, args...))
}
