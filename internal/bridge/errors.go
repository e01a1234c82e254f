package bridge

import "errors"

var (
	// ErrBackendInUse is returned by Acquire while another DirectBackend
	// from the same manager is still checked out.
	ErrBackendInUse = errors.New("direct backend already acquired")

	// ErrBackendReleased is returned by every method of a DirectBackend
	// after it has been released.
	ErrBackendReleased = errors.New("direct backend used after release")

	// ErrNilContext is returned by Acquire when no host context is given.
	ErrNilContext = errors.New("nil host context")

	// ErrBackendClosed is returned by a BatchBackend after Close.
	ErrBackendClosed = errors.New("batch backend closed")

	// ErrScriptNoConvert is returned when a colour script does not define
	// a convert function.
	ErrScriptNoConvert = errors.New("colour script does not define convert")
)
