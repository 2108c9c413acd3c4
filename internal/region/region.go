// Package region provides page-rounded, zero-filled memory reservations for
// the heap arena. On unix the reservation is an anonymous private mapping;
// elsewhere it falls back to a garbage-collected slice.
package region

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
)

// Region is a single reservation obtained from the OS. It is zero-filled,
// page-aligned, and never resized.
type Region struct {
	data    []byte
	release func() error
}

// Bytes returns the reserved byte range.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the reserved length in bytes, a whole multiple of the OS page
// size.
func (r *Region) Len() int { return len(r.data) }

// Release returns the reservation to the OS. Calling it more than once is a
// no-op.
func (r *Region) Release() error {
	if r.release == nil {
		r.data = nil
		return nil
	}
	rel := r.release
	r.release = nil
	r.data = nil
	return rel()
}

// Reserve returns a zero-filled reservation of at least n bytes, rounded up
// to a whole number of OS pages.
func Reserve(n int) (*Region, error) {
	if n <= 0 {
		return nil, fmt.Errorf("region: non-positive size %d", n)
	}
	return reserve(format.AlignTo(n, pageSize()))
}

// PageSize reports the OS page size used for rounding.
func PageSize() int { return pageSize() }
