package arena

import (
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/internal/format"
)

// BlockInfo describes one block observed during traversal.
type BlockInfo struct {
	Index         int   // position in the block list, starting at 0
	Allocated     bool  // a-bit
	PrevAllocated bool  // p-bit
	Start         int32 // offset of the block header
	End           int32 // offset one past the block's last byte
	Size          int32 // total size including the header
}

// BlockIterator walks the block list in address order, header to header,
// until the end mark. It is read-only.
type BlockIterator struct {
	a     *Arena
	off   int32
	index int
	done  bool
}

// Blocks returns an iterator over all blocks, starting at the heap start.
func (a *Arena) Blocks() *BlockIterator {
	return &BlockIterator{a: a, off: heapStart}
}

// Next returns the next block, or io.EOF after the last one. A header with
// an impossible size stops iteration with an error, since continuing would
// walk out of the region.
func (it *BlockIterator) Next() (BlockInfo, error) {
	if it.done {
		return BlockInfo{}, io.EOF
	}
	if !it.a.Ready() {
		it.done = true
		return BlockInfo{}, io.EOF
	}

	data := it.a.data
	end := it.a.EndMark()
	if it.off >= end || format.IsEndMark(data, it.off) {
		it.done = true
		return BlockInfo{}, io.EOF
	}

	h := format.ReadHeader(data, it.off)
	if h.Size < format.MinBlockSize || it.off+h.Size > end {
		it.done = true
		return BlockInfo{}, fmt.Errorf("arena: block at %d has invalid size %d", it.off, h.Size)
	}

	info := BlockInfo{
		Index:         it.index,
		Allocated:     h.Allocated,
		PrevAllocated: h.PrevAllocated,
		Start:         it.off,
		End:           it.off + h.Size,
		Size:          h.Size,
	}
	it.index++
	it.off += h.Size
	return info, nil
}

// Stats aggregates traversal totals. Total counts block bytes only; adding
// the 4-byte end mark and 4 bytes of leading padding gives the page-rounded
// region size.
type Stats struct {
	Used   int64
	Free   int64
	Total  int64
	Blocks int
}

// Stats walks the block list and sums used and free bytes.
func (a *Arena) Stats() (Stats, error) {
	var s Stats
	it := a.Blocks()
	for {
		b, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Stats{}, err
		}
		if b.Allocated {
			s.Used += int64(b.Size)
		} else {
			s.Free += int64(b.Size)
		}
		s.Blocks++
	}
	s.Total = s.Used + s.Free
	return s, nil
}
