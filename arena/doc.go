// Package arena owns the fixed-size heap region that the allocator operates
// on.
//
// # Overview
//
// An Arena reserves one contiguous, zero-filled, page-rounded byte range from
// the OS and lays out the classic implicit-list heap over it:
//
//	[4 pad][ block | block | ... ][4 end mark]
//
// The four leading pad bytes put every block payload on an 8-byte boundary.
// The end mark is a header-only pseudo-block whose size_status word is
// exactly 1; traversal and coalescing treat it as an allocated block of size
// zero, so nothing ever walks or merges past it.
//
// # Lifecycle
//
// An Arena is an explicit state machine:
//
//	Uninitialized --Init--> Ready --Release--> Released
//
// Init reserves the region and writes the initial single free block spanning
// the whole usable range. It runs at most once per Arena; a second call
// returns ErrAlreadyInitialized. Release unmaps the region; no operation is
// valid afterwards. The region is never resized between those two points.
//
//	a, err := arena.New(4096)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
// # Introspection
//
// Blocks returns an iterator over the block list in address order, and Stats
// aggregates used/free totals. Both are read-only: no invariant is enforced
// or repaired during traversal. The printer package renders their output for
// diagnostics.
//
// # Thread Safety
//
// Arena is not thread-safe. Callers must serialize access externally;
// header and footer updates are multi-step read-modify-write sequences.
package arena
