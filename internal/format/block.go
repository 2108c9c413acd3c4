package format

// Header describes one block's size_status word in unpacked form.
//
// size_status layout (little-endian word):
//
//	Bit 0     a-bit: 1 => this block is allocated
//	Bit 1     p-bit: 1 => the preceding block is allocated
//	Bits 2..  block size in bytes, including the 4-byte header,
//	          always a multiple of 8
//
// A free block repeats its size (flags clear) in a footer word at its last
// four bytes; allocated blocks have no footer.
//
// Examples for a 24-byte block:
//
//	allocated, preceding free:      size_status = 25
//	allocated, preceding allocated: size_status = 27
//	free, preceding free:           size_status = 24
//	free, preceding allocated:      size_status = 26
//	footer (free only):             size_status = 24
type Header struct {
	Size          int32
	Allocated     bool
	PrevAllocated bool
}

// Pack returns the raw size_status word for h.
func (h Header) Pack() uint32 {
	v := uint32(h.Size)
	if h.Allocated {
		v |= AllocBit
	}
	if h.PrevAllocated {
		v |= PrevAllocBit
	}
	return v
}

// ParseHeader unpacks a raw size_status word.
func ParseHeader(v uint32) Header {
	return Header{
		Size:          int32(v &^ FlagsMask),
		Allocated:     v&AllocBit != 0,
		PrevAllocated: v&PrevAllocBit != 0,
	}
}

// ReadHeader decodes the size_status word at off.
func ReadHeader(b []byte, off int32) Header {
	return ParseHeader(ReadU32(b, off))
}

// WriteHeader encodes h at off.
func WriteHeader(b []byte, off int32, h Header) {
	PutU32(b, off, h.Pack())
}

// ReadFooterSize returns the size stored in the footer word at off. Footers
// carry the size field only, but the flag bits are masked off anyway so a
// stale word cannot leak status into a coalesce.
func ReadFooterSize(b []byte, off int32) int32 {
	return int32(ReadU32(b, off) &^ FlagsMask)
}

// WriteFooter stores size (flags clear) at off.
func WriteFooter(b []byte, off int32, size int32) {
	PutU32(b, off, uint32(size))
}

// IsEndMark reports whether the word at off is the region's end mark.
func IsEndMark(b []byte, off int32) bool {
	return ReadU32(b, off) == EndMark
}
