package alloc

import (
	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/format"
)

// Ref is a payload offset into the arena's byte range. Refs are 8-byte
// aligned; the block's header word sits at ref-4. The zero Ref is never a
// valid allocation.
type Ref = int32

// maxAllocSize caps a single request at 1GB. Block offsets and sizes are
// int32; the cap keeps header-plus-rounding arithmetic from overflowing.
const maxAllocSize = 1 << 30

// Allocator serves allocation and deallocation requests against one arena
// using best-fit placement with immediate coalescing.
type Allocator struct {
	a     *arena.Arena
	stats Stats
}

// Stats holds cumulative allocator counters, for tests and diagnostics.
type Stats struct {
	AllocCalls       int   // Alloc() calls that passed validation
	FreeCalls        int   // successful Free() calls
	SplitCount       int   // allocations that split a free block
	CoalesceForward  int   // merges with a free successor
	CoalesceBackward int   // merges with a free predecessor
	BytesAllocated   int64 // total block bytes handed out, headers included
	BytesFreed       int64 // total block bytes returned
}

// New binds an allocator to a ready arena.
func New(a *arena.Arena) (*Allocator, error) {
	if !a.Ready() {
		return nil, ErrNotReady
	}
	return &Allocator{a: a}, nil
}

// Stats returns a copy of the cumulative counters.
func (al *Allocator) Stats() Stats { return al.stats }

// Alloc allocates a block with at least size payload bytes. It returns the
// payload reference and the payload byte slice. The slice may be longer than
// size: the block is rounded to a multiple of 8, and an unsplittable
// remainder is absorbed whole.
func (al *Allocator) Alloc(size int32) (Ref, []byte, error) {
	if size < 1 || size > maxAllocSize {
		return 0, nil, ErrBadSize
	}
	data := al.a.Bytes()
	if data == nil {
		return 0, nil, ErrNotReady
	}
	al.stats.AllocCalls++

	need := format.Align8(size + format.WordSize)
	end := al.a.EndMark()

	bestOff := int32(-1)
	bestSize := int32(0)

	for off := al.a.HeapStart(); off < end && !format.IsEndMark(data, off); {
		h := format.ReadHeader(data, off)
		next := off + h.Size

		if h.Allocated || h.Size < need {
			off = next
			continue
		}

		// Exact fit: take it on sight, no need to finish the scan.
		if h.Size == need {
			return al.take(data, off, h, end)
		}

		// Strict < keeps the first of equal-sized candidates, so ties
		// resolve to the lowest address.
		if bestOff < 0 || h.Size < bestSize {
			bestOff, bestSize = off, h.Size
		}
		off = next
	}

	if bestOff < 0 {
		return 0, nil, ErrNoSpace
	}

	h := format.ReadHeader(data, bestOff)

	// A split may never leave a fragment below the minimum block size; the
	// whole candidate is absorbed instead, exact-match style.
	if bestSize-need < format.MinBlockSize {
		return al.take(data, bestOff, h, end)
	}
	return al.split(data, bestOff, h, need)
}

// take claims an entire free block: set the a-bit and tell the successor its
// predecessor is now allocated. The end mark is never mutated.
func (al *Allocator) take(data []byte, off int32, h format.Header, end int32) (Ref, []byte, error) {
	h.Allocated = true
	format.WriteHeader(data, off, h)

	if next := off + h.Size; next != end {
		nh := format.ReadHeader(data, next)
		nh.PrevAllocated = true
		format.WriteHeader(data, next, nh)
	}

	al.stats.BytesAllocated += int64(h.Size)
	return off + format.WordSize, data[off+format.WordSize : off+h.Size], nil
}

// split carves need bytes off the front of a free block. The front becomes
// the allocation, inheriting the p-bit; the remainder stays free behind it
// with a fresh footer. The block after the remainder keeps p-bit=0, since
// its predecessor is still free.
func (al *Allocator) split(data []byte, off int32, h format.Header, need int32) (Ref, []byte, error) {
	rest := h.Size - need

	format.WriteHeader(data, off, format.Header{
		Size:          need,
		Allocated:     true,
		PrevAllocated: h.PrevAllocated,
	})

	restOff := off + need
	format.WriteHeader(data, restOff, format.Header{
		Size:          rest,
		PrevAllocated: true,
	})
	format.WriteFooter(data, restOff+rest-format.WordSize, rest)

	al.stats.SplitCount++
	al.stats.BytesAllocated += int64(need)
	return off + format.WordSize, data[off+format.WordSize : off+need], nil
}

// Free returns the block at ref to the free list, merging immediately with
// any free neighbor. Failing validations leave the heap untouched.
func (al *Allocator) Free(ref Ref) error {
	data := al.a.Bytes()
	if data == nil {
		return ErrNotReady
	}

	start, end := al.a.HeapStart(), al.a.EndMark()
	if ref < start+format.WordSize || ref >= end || ref%format.Alignment != 0 {
		return ErrBadRef
	}

	hdrOff := ref - format.WordSize
	h := format.ReadHeader(data, hdrOff)
	if !h.Allocated {
		return ErrDoubleFree
	}

	al.stats.FreeCalls++
	al.stats.BytesFreed += int64(h.Size)

	size := h.Size
	prevAllocated := h.PrevAllocated

	// Forward coalesce. The end mark reads as allocated, so it never
	// merges.
	if nh := format.ReadHeader(data, hdrOff+size); !nh.Allocated {
		size += nh.Size
		al.stats.CoalesceForward++
	}

	// Backward coalesce through the predecessor's footer; the block's
	// identity shifts to the predecessor's header.
	if !prevAllocated {
		prevSize := format.ReadFooterSize(data, hdrOff-format.WordSize)
		prevOff := hdrOff - prevSize
		prevAllocated = format.ReadHeader(data, prevOff).PrevAllocated
		hdrOff = prevOff
		size += prevSize
		al.stats.CoalesceBackward++
	}

	format.WriteHeader(data, hdrOff, format.Header{
		Size:          size,
		PrevAllocated: prevAllocated,
	})
	format.WriteFooter(data, hdrOff+size-format.WordSize, size)

	// The merged block's successor no longer has an allocated predecessor.
	if after := hdrOff + size; after != end {
		ah := format.ReadHeader(data, after)
		ah.PrevAllocated = false
		format.WriteHeader(data, after, ah)
	}
	return nil
}
