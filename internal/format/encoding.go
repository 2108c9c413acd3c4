package format

import "encoding/binary"

// Binary encoding utilities for little-endian words.
//
// Every header and footer in the heap region is a single 32-bit word stored
// little-endian. Go's standard library implementation is already heavily
// optimized by the compiler, so these thin wrappers carry no overhead.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int32, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int32) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}
