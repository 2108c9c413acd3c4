package alloc

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/internal/format"
)

// newTestAllocator returns a ready arena of the requested size and an
// allocator bound to it. The arena is released when the test ends.
func newTestAllocator(t testing.TB, size int) (*arena.Arena, *Allocator) {
	t.Helper()

	a, err := arena.New(size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Release() })

	al, err := New(a)
	require.NoError(t, err)
	return a, al
}

// buildFreeBlocks lays out free blocks of the given total sizes (header
// included) in address order, separated by minimum-size allocated blocks so
// they cannot coalesce. It returns the header offset of each free block.
//
// Layout produced for sizes {32, 64}:
//
//	[32 free][8 alloc][64 free][8 alloc][tail free]
func buildFreeBlocks(t testing.TB, al *Allocator, sizes []int32) []int32 {
	t.Helper()

	refs := make([]Ref, len(sizes))
	offs := make([]int32, len(sizes))
	for i, sz := range sizes {
		require.Zero(t, sz%format.Alignment, "free block size %d not 8-aligned", sz)
		require.GreaterOrEqual(t, sz, int32(format.MinBlockSize))

		ref, _, err := al.Alloc(sz - format.WordSize)
		require.NoError(t, err)
		refs[i] = ref
		offs[i] = ref - format.WordSize

		// Separator: smallest possible allocated block.
		_, _, err = al.Alloc(1)
		require.NoError(t, err)
	}
	for _, ref := range refs {
		require.NoError(t, al.Free(ref))
	}
	return offs
}

// collectBlocks drains the arena's block iterator.
func collectBlocks(t testing.TB, a *arena.Arena) []arena.BlockInfo {
	t.Helper()

	var out []arena.BlockInfo
	it := a.Blocks()
	for {
		b, err := it.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, b)
	}
}

// assertInvariants walks the raw heap and checks every structural invariant:
// alignment, size floors, truthful p-bits, no adjacent free blocks, footer
// mirrors, and total accounting against the usable size.
func assertInvariants(t testing.TB, a *arena.Arena) {
	t.Helper()

	data := a.Bytes()
	end := a.EndMark()

	var total int64
	prevAllocated := true // boundary convention for the first block
	prevFree := false
	blockNum := 0

	off := a.HeapStart()
	for off < end && !format.IsEndMark(data, off) {
		h := format.ReadHeader(data, off)
		blockNum++

		assert.Zero(t, h.Size%format.Alignment,
			"block %d: size %d not 8-aligned", blockNum, h.Size)
		require.GreaterOrEqual(t, h.Size, int32(format.MinBlockSize),
			"block %d: size below minimum", blockNum)
		require.LessOrEqual(t, off+h.Size, end,
			"block %d: overruns the end mark", blockNum)

		assert.Equal(t, prevAllocated, h.PrevAllocated,
			"block %d: p-bit disagrees with predecessor status", blockNum)

		if !h.Allocated {
			assert.False(t, prevFree,
				"block %d: two adjacent free blocks", blockNum)
			footer := format.ReadFooterSize(data, off+h.Size-format.WordSize)
			assert.Equal(t, h.Size, footer,
				"block %d: footer %d does not mirror header size %d", blockNum, footer, h.Size)
		}

		total += int64(h.Size)
		prevAllocated = h.Allocated
		prevFree = !h.Allocated
		off += h.Size
	}

	assert.Equal(t, end, off, "block list must end exactly at the end mark")
	assert.True(t, format.IsEndMark(data, end), "end mark overwritten")
	assert.Equal(t, int64(a.Usable()), total,
		"sum of block sizes must equal the usable region size")
}
