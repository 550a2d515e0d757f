package allocator

import (
	"testing"

	"github.com/hanahabibi/malloclab/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareHeap(t *testing.T) *Heap {
	t.Helper()
	r := region.New(4096)
	return &Heap{region: r, growth: DefaultGrowthPolicy(), freeListp: nullPtr}
}

// allocPayload carves out a fresh, unrelated payload offset for a free
// list test node; the free list only cares about the two link words.
func allocPayload(t *testing.T, h *Heap) uint32 {
	t.Helper()
	base, ok := h.region.Extend(D)
	require.True(t, ok)
	return base
}

func TestFreeListAddSingle(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)

	h.addFree(a)

	assert.Equal(t, a, h.freeListp)
	assert.Equal(t, nullPtr, prevFree(h.region, a))
	assert.Equal(t, nullPtr, nextFree(h.region, a))
}

func TestFreeListAddIsLIFO(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)
	b := allocPayload(t, h)

	h.addFree(a)
	h.addFree(b)

	assert.Equal(t, b, h.freeListp)
	assert.Equal(t, a, nextFree(h.region, b))
	assert.Equal(t, nullPtr, prevFree(h.region, b))
	assert.Equal(t, b, prevFree(h.region, a))
	assert.Equal(t, nullPtr, nextFree(h.region, a))
}

func TestFreeListRemoveOnlyElement(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)
	h.addFree(a)

	h.removeFree(a)

	assert.Equal(t, nullPtr, h.freeListp)
}

func TestFreeListRemoveHead(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)
	b := allocPayload(t, h)
	h.addFree(a)
	h.addFree(b) // list: b -> a

	h.removeFree(b)

	assert.Equal(t, a, h.freeListp)
	assert.Equal(t, nullPtr, prevFree(h.region, a))
}

func TestFreeListRemoveTail(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)
	b := allocPayload(t, h)
	h.addFree(a)
	h.addFree(b) // list: b -> a

	h.removeFree(a)

	assert.Equal(t, b, h.freeListp)
	assert.Equal(t, nullPtr, nextFree(h.region, b))
}

func TestFreeListRemoveMiddle(t *testing.T) {
	h := newBareHeap(t)
	a := allocPayload(t, h)
	b := allocPayload(t, h)
	c := allocPayload(t, h)
	h.addFree(a)
	h.addFree(b)
	h.addFree(c) // list: c -> b -> a

	h.removeFree(b)

	assert.Equal(t, c, h.freeListp)
	assert.Equal(t, a, nextFree(h.region, c))
	assert.Equal(t, c, prevFree(h.region, a))
}
