package arena

import "errors"

var (
	// ErrBadSize indicates a non-positive requested region size.
	ErrBadSize = errors.New("arena: size must be positive")

	// ErrAlreadyInitialized indicates a second Init on the same Arena.
	ErrAlreadyInitialized = errors.New("arena: already initialized")

	// ErrOutOfMemory indicates the OS could not satisfy the reservation.
	ErrOutOfMemory = errors.New("arena: cannot reserve region")

	// ErrReleased indicates use of an Arena after Release.
	ErrReleased = errors.New("arena: released")
)
