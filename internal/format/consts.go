// Package format houses the low-level block encoding for the heap region.
// The goal is to keep the bit packing focused and allocation-free so higher
// level packages can reason in terms of {size, allocated, prevAllocated}
// rather than raw bit arithmetic.
package format

const (
	// WordSize is the number of bytes used by the header preceding every
	// block (free or in-use), and by the footer trailing every free block.
	WordSize = 4

	// Alignment is the required alignment of blocks. Block sizes and payload
	// offsets are multiples of 8 bytes.
	Alignment = 8

	// AlignmentMask is the bitmask used for aligning to 8-byte boundaries.
	AlignmentMask = Alignment - 1

	// MinBlockSize is the smallest legal block: a header plus a footer with
	// no payload in between. The allocator never creates a block below this.
	MinBlockSize = 8

	// EndMark is the size_status sentinel terminating the heap region. Its
	// size field is zero, so no real block can ever encode it; its low bit
	// reads as allocated, which keeps coalescing from walking past it.
	EndMark = uint32(1)

	// AllocBit marks the block itself as allocated.
	AllocBit = uint32(0x1)

	// PrevAllocBit marks the block's immediate predecessor as allocated.
	PrevAllocBit = uint32(0x2)

	// FlagsMask covers both status bits. The size field occupies the
	// remaining high bits.
	FlagsMask = AllocBit | PrevAllocBit
)
