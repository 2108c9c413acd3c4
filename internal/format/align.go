package format

// Alignment utilities for the heap region. Block sizes must be multiples of
// 8 bytes; the region itself is rounded up to whole OS pages at reservation
// time.

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int32) int32 {
	return (n + AlignmentMask) & ^int32(AlignmentMask)
}

// AlignTo returns n aligned up to the next multiple of boundary. Used for
// page rounding, where the boundary is only known at runtime.
func AlignTo(n, boundary int) int {
	if rem := n % boundary; rem != 0 {
		n += boundary - rem
	}
	return n
}
