package allocator

import "math"

// Word and block size constants. These must match exactly for
// bit-compatible traces (spec constants: W=4, D=8, MIN_BLOCK=16).
const (
	// W is the word size in bytes.
	W = 4
	// D is the double-word size in bytes; all user payloads are D-aligned.
	D = 2 * W
	// MinBlock is the smallest block size: header + prev + next + footer.
	MinBlock = 4 * W
)

// nullPtr is the free-list sentinel. Offset 0 is a valid, real block
// address once blocks are addressed as offsets from a region's Lo(), so
// the sentinel must be a reserved value rather than 0.
const nullPtr uint32 = math.MaxUint32

// allocMask isolates the allocated bit packed into a header/footer word.
const allocMask uint32 = 0x1

// sizeMask isolates the size packed into a header/footer word.
const sizeMask uint32 = ^uint32(0x7)
