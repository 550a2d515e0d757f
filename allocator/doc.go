// Package allocator implements a Knuth-style explicit free-list heap
// allocator with boundary tags and immediate coalescing.
//
// It manages a contiguous, monotonically-growable memory region supplied
// by a RegionProvider (see the region package for the default in-process
// implementation) and exposes malloc/free/realloc-shaped operations on top
// of it: Init, Allocate, Release, Reallocate.
package allocator
