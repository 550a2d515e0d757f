package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionExtend(t *testing.T) {
	r := New(64)
	assert.Equal(t, uint32(0), r.Lo())
	assert.Equal(t, uint32(0), r.Hi())

	base, ok := r.Extend(16)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), base)
	assert.Equal(t, uint32(16), r.Hi())

	base, ok = r.Extend(32)
	assert.True(t, ok)
	assert.Equal(t, uint32(16), base)
	assert.Equal(t, uint32(48), r.Hi())
}

func TestRegionExtendOutOfMemory(t *testing.T) {
	r := New(32)

	_, ok := r.Extend(24)
	assert.True(t, ok)

	_, ok = r.Extend(16)
	assert.False(t, ok, "extend beyond capacity must fail")
	assert.Equal(t, uint32(24), r.Hi(), "failed extend must not mutate state")
}

func TestRegionExtendZeroBytes(t *testing.T) {
	r := New(32)
	_, ok := r.Extend(0)
	assert.False(t, ok)
}

func TestRegionAtWritesThroughPointer(t *testing.T) {
	r := New(32)
	base, ok := r.Extend(16)
	assert.True(t, ok)

	p := (*uint32)(r.At(base))
	*p = 0xdeadbeef

	p2 := (*uint32)(r.At(base))
	assert.Equal(t, uint32(0xdeadbeef), *p2)
}

func TestRegionCapRoundsUpToWordSize(t *testing.T) {
	r := New(20)
	assert.Equal(t, uint32(24), r.Cap())
}
