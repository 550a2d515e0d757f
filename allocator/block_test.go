package allocator

import (
	"testing"

	"github.com/hanahabibi/malloclab/region"
	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	assert.Equal(t, uint32(24), pack(24, 0))
	assert.Equal(t, uint32(25), pack(24, 1))
}

func TestHdrFtrRoundTrip(t *testing.T) {
	r := region.New(128)
	base, ok := r.Extend(64)
	assert.True(t, ok)

	bp := base + W // pretend bp is a payload one word into the region
	setTags(r, bp, 32, 1)

	assert.Equal(t, uint32(32), blockSize(r, bp))
	assert.True(t, blockAlloc(r, bp))
	assert.Equal(t, pack(32, 1), readWord(r, hdr(bp)))
	assert.Equal(t, pack(32, 1), readWord(r, ftr(r, bp)))
}

func TestBlockPayloadSize(t *testing.T) {
	r := region.New(128)
	base, _ := r.Extend(64)
	bp := base + W
	setTags(r, bp, 32, 1)

	assert.Equal(t, uint32(32-D), blockPayloadSize(r, bp))
}

func TestNextPrevBlock(t *testing.T) {
	r := region.New(128)
	base, _ := r.Extend(64)

	first := base + W
	setTags(r, first, 24, 1)

	second := first + 24
	setTags(r, second, 16, 0)

	assert.Equal(t, second, nextBlock(r, first))
	assert.Equal(t, first, prevBlock(r, second))
}

func TestOffsetOfRoundTripsWithAt(t *testing.T) {
	r := region.New(128)
	base, _ := r.Extend(64)

	p := r.At(base + 8)
	assert.Equal(t, base+8, offsetOf(r, p))
}
