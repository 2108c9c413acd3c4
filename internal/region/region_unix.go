//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// reserve maps size bytes of anonymous zero-filled memory. size must already
// be page-rounded.
func reserve(size int) (*Region, error) {
	data, err := unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}
	return &Region{
		data:    data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}

func pageSize() int { return unix.Getpagesize() }
