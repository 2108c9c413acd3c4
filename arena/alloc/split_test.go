package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

func TestSplit_FrontAllocatedRemainderFree(t *testing.T) {
	a, al := newTestAllocator(t, 4096)
	usable := a.Usable()

	ref, _, err := al.Alloc(100) // needs 104, splits the initial block
	require.NoError(t, err)
	assert.Equal(t, a.HeapStart()+format.WordSize, ref)

	data := a.Bytes()

	// Front: allocated, inherits the initial block's p-bit.
	front := format.ReadHeader(data, a.HeapStart())
	assert.Equal(t, format.Header{Size: 104, Allocated: true, PrevAllocated: true}, front)

	// Remainder: free, predecessor now allocated, fresh footer.
	restOff := a.HeapStart() + 104
	rest := format.ReadHeader(data, restOff)
	assert.Equal(t, format.Header{Size: usable - 104, PrevAllocated: true}, rest)
	assert.Equal(t, usable-104,
		format.ReadFooterSize(data, restOff+rest.Size-format.WordSize))

	assert.Equal(t, 1, al.Stats().SplitCount)
	assertInvariants(t, a)
}

// TestSplit_RemainderGuard verifies the minimum-block rule: a candidate
// whose remainder would be under 8 bytes is taken whole, so the allocation
// grows past the rounded request instead of leaving an invalid fragment.
func TestSplit_RemainderGuard(t *testing.T) {
	a, al := newTestAllocator(t, 4096)
	offs := buildFreeBlocks(t, al, []int32{48})

	splitsBefore := al.Stats().SplitCount

	ref, buf, err := al.Alloc(40) // needs 44; 48-44 leaves only 4
	require.NoError(t, err)
	assert.Equal(t, offs[0]+format.WordSize, ref)

	// The whole 48-byte block is absorbed.
	h := format.ReadHeader(a.Bytes(), offs[0])
	assert.True(t, h.Allocated)
	assert.Equal(t, int32(48), h.Size)
	assert.Equal(t, 48-format.WordSize, len(buf))

	assert.Equal(t, splitsBefore, al.Stats().SplitCount, "guard path must not split")
	assertInvariants(t, a)
}

// TestSplit_ExactRemainderBoundary: a remainder of exactly 8 bytes is legal
// and must be split off.
func TestSplit_ExactRemainderBoundary(t *testing.T) {
	a, al := newTestAllocator(t, 4096)
	offs := buildFreeBlocks(t, al, []int32{48})

	ref, _, err := al.Alloc(36) // needs 40; 48-40 = 8, the minimum block
	require.NoError(t, err)
	assert.Equal(t, offs[0]+format.WordSize, ref)

	data := a.Bytes()
	h := format.ReadHeader(data, offs[0])
	assert.Equal(t, int32(40), h.Size)

	rest := format.ReadHeader(data, offs[0]+40)
	assert.Equal(t, format.Header{Size: 8, PrevAllocated: true}, rest)
	assertInvariants(t, a)
}

// TestSplit_SuccessorPBitUnchanged: the block after the remainder still has
// a free predecessor, so its p-bit must stay clear.
func TestSplit_SuccessorPBitUnchanged(t *testing.T) {
	a, al := newTestAllocator(t, 4096)
	offs := buildFreeBlocks(t, al, []int32{64})
	sepOff := offs[0] + 64 // separator block laid down by the builder

	data := a.Bytes()
	require.False(t, format.ReadHeader(data, sepOff).PrevAllocated)

	_, _, err := al.Alloc(36) // needs 40, splits the 64 into 40+24
	require.NoError(t, err)

	sep := format.ReadHeader(data, sepOff)
	assert.True(t, sep.Allocated)
	assert.False(t, sep.PrevAllocated, "remainder is still free; p-bit must stay 0")
	assertInvariants(t, a)
}
