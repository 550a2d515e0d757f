package allocator

import "errors"

var (
	// ErrOutOfMemory indicates the region provider refused to grow the
	// region further to satisfy a request.
	ErrOutOfMemory = errors.New("allocator: out of memory")

	// ErrNotInitialized indicates a call was made on a Heap before Init
	// succeeded.
	ErrNotInitialized = errors.New("allocator: heap not initialized")

	// ErrForeignPointer indicates a pointer passed to Reallocate does not
	// lie within this heap's region. Release does not check ownership.
	ErrForeignPointer = errors.New("allocator: pointer not owned by this heap")
)
