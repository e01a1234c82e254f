package host

import "errors"

var (
	// ErrNilQueue is returned when a batch is submitted to a nil queue.
	ErrNilQueue = errors.New("nil render queue")

	// ErrInvalidColor is returned for colour strings that are neither a
	// palette name nor "#RGB" / "#RRGGBB".
	ErrInvalidColor = errors.New("invalid colour")

	// ErrInvalidFPS is returned when a driver is configured with a
	// non-positive frame rate.
	ErrInvalidFPS = errors.New("frame rate must be positive")
)
