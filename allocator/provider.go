package allocator

import "unsafe"

// RegionProvider is the region provider this allocator's core algorithm
// depends on: a contiguous, monotonically-growable memory region addressed
// by byte offset from Lo(). The region package's Region is the default
// in-process implementation; callers may supply their own.
type RegionProvider interface {
	// Extend grows the region by exactly bytes and returns the offset of
	// the first newly available byte. bytes is always a positive multiple
	// of W. Extend fails (ok=false) if the region cannot grow further;
	// that is this module's only source of out-of-memory.
	Extend(bytes uint32) (base uint32, ok bool)

	// Lo returns the offset of the first byte ever handed out.
	Lo() uint32

	// Hi returns one past the last byte currently owned by the region.
	Hi() uint32

	// At returns a real pointer to the byte at offset within the region.
	At(offset uint32) unsafe.Pointer
}
