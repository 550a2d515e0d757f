package allocator

import "unsafe"

// A block pointer (bp) is the byte offset, from the region's Lo(), of a
// block's payload. Header and footer are read and written through raw
// word casts over the region's backing store, in the manner of the
// teacher package's buddyListHead/realSlabListHead accessors.

func readWord(r RegionProvider, offset uint32) uint32 {
	return *(*uint32)(r.At(offset))
}

func writeWord(r RegionProvider, offset uint32, v uint32) {
	*(*uint32)(r.At(offset)) = v
}

// pack combines a D-aligned size and an allocated bit into a header word.
func pack(size uint32, alloc uint32) uint32 {
	return size | alloc
}

// hdr returns the offset of bp's header word.
func hdr(bp uint32) uint32 {
	return bp - W
}

// ftr returns the offset of bp's footer word. It reads bp's own header to
// find the block's size.
func ftr(r RegionProvider, bp uint32) uint32 {
	return bp + blockSize(r, bp) - D
}

// blockSize returns the total size (header..footer inclusive) of the
// block bp belongs to.
func blockSize(r RegionProvider, bp uint32) uint32 {
	return readWord(r, hdr(bp)) & sizeMask
}

// blockAlloc reports whether the block bp belongs to is marked allocated.
func blockAlloc(r RegionProvider, bp uint32) bool {
	return readWord(r, hdr(bp))&allocMask != 0
}

// blockPayloadSize returns the number of usable payload bytes in bp's
// block: the block size minus the header and footer words. This is the
// correct read spec.md's Reallocate open question asks for — the header
// word at bp-W masked and reduced by 2*W, not a sizeof(size_t)-based
// offset from a different allocator's layout.
func blockPayloadSize(r RegionProvider, bp uint32) uint32 {
	return blockSize(r, bp) - D
}

// setTags writes both the header and the footer of the block starting at
// bp with the given size and allocated bit. Callers must supply the full
// new size; setTags does not preserve any previous value.
func setTags(r RegionProvider, bp uint32, size uint32, alloc uint32) {
	w := pack(size, alloc)
	writeWord(r, hdr(bp), w)
	writeWord(r, bp+size-D, w)
}

// nextBlock returns the payload offset of the block physically following
// bp's block.
func nextBlock(r RegionProvider, bp uint32) uint32 {
	return bp + blockSize(r, bp)
}

// prevBlock returns the payload offset of the block physically preceding
// bp's block, read via the predecessor's footer at bp-2*W. This is always
// valid for any real block because the prologue's allocated footer
// terminates backward traversal.
func prevBlock(r RegionProvider, bp uint32) uint32 {
	prevSize := readWord(r, bp-D) & sizeMask
	return bp - prevSize
}

// offsetOf converts a real pointer, previously returned by At, back to its
// region offset.
func offsetOf(r RegionProvider, p unsafe.Pointer) uint32 {
	base := r.At(r.Lo())
	return uint32(uintptr(p) - uintptr(base))
}
