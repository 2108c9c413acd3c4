package alloc

import "errors"

var (
	// ErrBadSize indicates a non-positive or absurdly large requested size.
	ErrBadSize = errors.New("alloc: size must be at least 1 byte")

	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("alloc: no free block large enough")

	// ErrBadRef indicates a nil, misaligned, or out-of-range reference.
	ErrBadRef = errors.New("alloc: bad block reference")

	// ErrDoubleFree indicates a Free on a block that is already free.
	ErrDoubleFree = errors.New("alloc: block already free")

	// ErrNotReady indicates an allocator bound to an arena that is not
	// initialized, or whose arena has been released.
	ErrNotReady = errors.New("alloc: arena not ready")
)
