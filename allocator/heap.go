package allocator

import (
	"unsafe"

	"github.com/hanahabibi/malloclab/region"
)

// Config configures a Heap. Zero-value Config is invalid; use
// DefaultGrowthPolicy to fill it in.
type Config struct {
	Growth GrowthPolicy
}

func validateConfig(conf Config) {
	conf.Growth.validate()
}

// Heap is a single explicit free-list allocator instance over a
// RegionProvider. Unlike the teacher package's Allocator (which stores its
// buddy tree state directly, sized once at construction), Heap keeps its
// prologue/free-list/epilogue triple as instance state rather than package
// globals, per spec.md's "Global state" design note, so multiple
// independent heaps can coexist in one process.
//
// Heap is not safe for concurrent use; the region provider it wraps must
// not be touched by anyone else between Init and teardown.
type Heap struct {
	region RegionProvider
	growth GrowthPolicy

	heapListp uint32
	freeListp uint32
	epilogue  uint32
	inited    bool
}

// NewHeap constructs a Heap over an already-constructed RegionProvider.
// Call Init before using it.
func NewHeap(conf Config, r RegionProvider) *Heap {
	validateConfig(conf)
	return &Heap{
		region:    r,
		growth:    conf.Growth,
		freeListp: nullPtr,
	}
}

// NewDefaultHeap constructs a Heap backed by a freshly allocated
// region.Region sized to conf.Growth.MaxHeapBytes, and initializes it.
func NewDefaultHeap(conf Config) (*Heap, error) {
	validateConfig(conf)
	r := region.New(conf.Growth.MaxHeapBytes)
	h := NewHeap(conf, r)
	if err := h.Init(); err != nil {
		return nil, err
	}
	return h, nil
}

// Init lays out the prologue and epilogue sentinels and seeds the heap
// with an initial free block of GrowthPolicy.ChunkSize bytes.
func (h *Heap) Init() error {
	base, ok := h.region.Extend(4 * W)
	if !ok {
		return ErrOutOfMemory
	}

	writeWord(h.region, base+0*W, 0)                 // alignment padding
	writeWord(h.region, base+1*W, pack(D, 1))         // prologue header
	writeWord(h.region, base+2*W, pack(D, 1))         // prologue footer
	writeWord(h.region, base+3*W, pack(0, 1))         // epilogue header
	h.epilogue = base + 3*W
	h.heapListp = base + 2*W
	h.freeListp = nullPtr
	h.inited = true

	if _, ok := h.extend(h.growth.ChunkSize / W); !ok {
		h.inited = false
		return ErrOutOfMemory
	}
	return nil
}

// extend grows the region by at least words*W bytes (rounded up to an
// even word count so the addition stays D-aligned), appends a new free
// block before a fresh epilogue, and coalesces it with whatever used to be
// the last block. It returns the payload offset of the resulting block.
func (h *Heap) extend(words uint32) (uint32, bool) {
	size := words * W
	if words%2 != 0 {
		size = (words + 1) * W
	}

	base, ok := h.region.Extend(size)
	if !ok {
		return 0, false
	}

	bp := base
	setTags(h.region, bp, size, 0)
	writeWord(h.region, bp+size-W, pack(0, 1))
	h.epilogue = bp + size - W

	return h.coalesce(bp), true
}

// owns reports whether ptr lies within the region this Heap manages.
func (h *Heap) owns(ptr unsafe.Pointer) bool {
	off := offsetOf(h.region, ptr)
	return off >= h.region.Lo() && off < h.region.Hi()
}

// findFit performs a first-fit linear scan of the free list.
func (h *Heap) findFit(asize uint32) (uint32, bool) {
	for bp := h.freeListp; bp != nullPtr; bp = nextFree(h.region, bp) {
		if asize <= blockSize(h.region, bp) {
			return bp, true
		}
	}
	return 0, false
}

// alignedSize computes the D-aligned block size needed to hold a size-byte
// request, reserving room for boundary tags.
func alignedSize(size uint32) uint32 {
	if size <= D {
		return MinBlock
	}
	return D * ((size + D + (D - 1)) / D)
}

// Allocate reserves a block able to hold at least size bytes and returns a
// pointer to its payload. size == 0 returns (nil, nil): a no-op, not an
// error. A nil result with a non-nil error means the heap is not
// initialized (ErrNotInitialized) or the region provider refused to grow
// further (ErrOutOfMemory).
func (h *Heap) Allocate(size uint32) (unsafe.Pointer, error) {
	if !h.inited {
		return nil, ErrNotInitialized
	}
	if size == 0 {
		return nil, nil
	}

	asize := alignedSize(size)

	if bp, ok := h.findFit(asize); ok {
		h.place(bp, asize)
		return h.region.At(bp), nil
	}

	extendWords := h.growth.ExtendSize(asize) / W
	bp, ok := h.extend(extendWords)
	if !ok {
		return nil, ErrOutOfMemory
	}
	h.place(bp, asize)
	return h.region.At(bp), nil
}

// Release frees the block at ptr, coalescing it with any free neighbors.
// A nil ptr, or a call before Init succeeds, is a no-op.
func (h *Heap) Release(ptr unsafe.Pointer) {
	if ptr == nil || !h.inited {
		return
	}

	bp := offsetOf(h.region, ptr)
	size := blockSize(h.region, bp)
	setTags(h.region, bp, size, 0)
	h.coalesce(bp)
}

// Reallocate resizes the block at ptr to hold size bytes, preserving the
// leading min(size, old payload size) bytes of its contents. ptr == nil
// behaves like Allocate(size); size == 0 behaves like Release(ptr) and
// returns (nil, nil).
func (h *Heap) Reallocate(ptr unsafe.Pointer, size uint32) (unsafe.Pointer, error) {
	if ptr == nil {
		return h.Allocate(size)
	}
	if !h.owns(ptr) {
		return nil, ErrForeignPointer
	}
	if size == 0 {
		h.Release(ptr)
		return nil, nil
	}

	oldBp := offsetOf(h.region, ptr)
	oldPayloadSize := blockPayloadSize(h.region, oldBp)

	newPtr, err := h.Allocate(size)
	if err != nil {
		return nil, err
	}

	copySize := size
	if oldPayloadSize < copySize {
		copySize = oldPayloadSize
	}
	src := unsafe.Slice((*byte)(ptr), copySize)
	dst := unsafe.Slice((*byte)(newPtr), copySize)
	copy(dst, src)

	h.Release(ptr)
	return newPtr, nil
}

// Stats summarizes a Heap's current utilization.
type Stats struct {
	Allocated uint32
	Free      uint32
	Span      uint32
}

// Utilization walks the heap from the prologue to the epilogue and totals
// allocated versus free bytes. It is O(number of blocks).
func (h *Heap) Utilization() Stats {
	var s Stats
	r := h.region

	for bp := h.heapListp; hdr(bp) != h.epilogue; bp = nextBlock(r, bp) {
		sz := blockSize(r, bp)
		if sz == 0 {
			break
		}
		if blockAlloc(r, bp) {
			s.Allocated += sz
		} else {
			s.Free += sz
		}
	}
	s.Span = r.Hi() - r.Lo()
	return s
}
