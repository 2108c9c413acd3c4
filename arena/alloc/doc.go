// Package alloc implements block allocation and free-list maintenance over
// an arena's heap region.
//
// # Overview
//
// The allocator keeps the classic implicit free list: every block starts
// with a 4-byte size_status header, free blocks also carry a 4-byte footer
// mirroring the size, and status travels in the two low bits of the header
// word (a-bit: this block allocated; p-bit: preceding block allocated).
// There is no external index; both operations walk the block list in
// address order.
//
// # Allocation
//
//   - The requested payload size grows by the 4-byte header and rounds up to
//     a multiple of 8.
//   - The scan from heap start to end mark is best-fit: among free blocks
//     large enough, the smallest wins, with ties going to the lowest
//     address. A block whose size matches exactly is taken on sight without
//     finishing the scan.
//   - A chosen block larger than needed is split: the front part becomes
//     the allocation, the remainder stays free with a fresh footer. When
//     the remainder would be smaller than the 8-byte minimum block, the
//     whole block is taken instead, so the allocation can be up to 4 bytes
//     larger than the rounded request.
//
// # Deallocation
//
// Free validates the reference (alignment, range, a-bit set), clears the
// a-bit, and immediately coalesces with whichever neighbors are free. The
// predecessor is found through its footer; the successor by size arithmetic.
// The end mark reads as an allocated zero-size block, so coalescing stops at
// the region boundary without a special case. The merged block gets a fresh
// footer and the successor's p-bit is cleared.
//
// Failed operations never mutate heap state.
//
// # Usage Example
//
//	a, err := arena.New(4096)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	al, err := alloc.New(a)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := al.Alloc(100)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later
//	err = al.Free(ref)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Header and footer updates are
// multi-step read-modify-write sequences; callers must serialize access
// externally, e.g. with a single mutex around the whole arena.
package alloc
