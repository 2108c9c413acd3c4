//go:build !unix

package region

import "os"

// reserve hands out a zeroed slice when mmap is not available. The GC owns
// the memory; Release has nothing to return to the OS.
func reserve(size int) (*Region, error) {
	return &Region{data: make([]byte, size)}, nil
}

func pageSize() int { return os.Getpagesize() }
