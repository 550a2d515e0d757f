// Package trace parses and replays malloc trace files: a tuple stream of
// allocate/free/reallocate operations that drives an allocator.Heap the
// same way a malloc-lab reference driver would, keyed by a caller-chosen
// integer id rather than a raw pointer.
package trace
