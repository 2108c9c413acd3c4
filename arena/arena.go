package arena

import (
	"fmt"
	"math"

	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/region"
)

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateReleased
)

// heapStart is the offset of the first block header. The four leading bytes
// are padding so that payloads (header offset + 4) land on 8-byte boundaries.
const heapStart = int32(format.WordSize)

// Arena is one fixed-size heap region, backed by an anonymous OS mapping on
// unix and a plain slice elsewhere. The zero value is an uninitialized Arena
// ready for Init.
type Arena struct {
	reg    *region.Region
	data   []byte
	usable int32
	state  state
}

// New reserves a region of at least sizeBytes and returns a ready Arena.
func New(sizeBytes int) (*Arena, error) {
	a := &Arena{}
	if err := a.Init(sizeBytes); err != nil {
		return nil, err
	}
	return a, nil
}

// Init reserves the backing region and writes the initial heap layout: one
// free block spanning the usable range, its footer, and the end mark.
//
// The requested size is rounded up to a whole number of OS pages; eight
// bytes of the rounded size go to the leading alignment padding and the end
// mark, the rest becomes the initial free block. Sizes whose rounded length
// would not fit in an int32 offset are rejected with ErrBadSize.
func (a *Arena) Init(sizeBytes int) error {
	switch a.state {
	case stateReady:
		return ErrAlreadyInitialized
	case stateReleased:
		return ErrReleased
	}
	if sizeBytes <= 0 {
		return ErrBadSize
	}
	// Block offsets are int32, so the page-rounded region must stay below
	// 2 GiB. Requests that could round past that bound are invalid.
	if int64(sizeBytes) > math.MaxInt32-int64(region.PageSize()) {
		return ErrBadSize
	}

	reg, err := region.Reserve(sizeBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	data := reg.Bytes()
	usable := int32(len(data)) - 2*format.WordSize

	// The first block has no real predecessor; it is treated as allocated
	// by convention, since there is nothing to coalesce with.
	format.WriteHeader(data, heapStart, format.Header{
		Size:          usable,
		PrevAllocated: true,
	})
	format.WriteFooter(data, heapStart+usable-format.WordSize, usable)
	format.PutU32(data, heapStart+usable, format.EndMark)

	a.reg = reg
	a.data = data
	a.usable = usable
	a.state = stateReady
	return nil
}

// Release returns the region to the OS. The Arena enters a terminal state;
// every subsequent operation fails. Releasing more than once is a no-op.
func (a *Arena) Release() error {
	if a.state != stateReady {
		a.state = stateReleased
		return nil
	}
	a.state = stateReleased
	a.data = nil
	return a.reg.Release()
}

// Ready reports whether the Arena has been initialized and not yet released.
func (a *Arena) Ready() bool { return a != nil && a.state == stateReady }

// Bytes returns the owned byte range, or nil when the Arena is not ready.
func (a *Arena) Bytes() []byte { return a.data }

// HeapStart returns the offset of the first block header.
func (a *Arena) HeapStart() int32 { return heapStart }

// EndMark returns the offset of the end-mark word, one past the last block.
func (a *Arena) EndMark() int32 { return heapStart + a.usable }

// Usable returns the number of bytes spanned by blocks: the page-rounded
// region size minus the leading padding and the end mark.
func (a *Arena) Usable() int32 { return a.usable }
