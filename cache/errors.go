package cache

import "errors"

// Sentinel errors, one per failure cause, so callers can tell failures
// apart without parsing messages.
var (
	// ErrNotSupported is returned by the enumeration views (Values,
	// Entries, ContainsValue). Serving them would mean reading every
	// spill file.
	ErrNotSupported = errors.New("operation not supported")

	// ErrScratchDir covers creation and removal of the scratch directory.
	ErrScratchDir = errors.New("scratch directory failed")

	// ErrSpillWrite covers encoding and writing a spill file.
	ErrSpillWrite = errors.New("spill write failed")

	// ErrSpillRead covers reading a spill file back.
	ErrSpillRead = errors.New("spill read failed")

	// ErrSpillDelete covers deleting a spill file.
	ErrSpillDelete = errors.New("spill delete failed")

	// ErrCorrupt marks a spill file whose contents cannot be decoded.
	ErrCorrupt = errors.New("spill file corrupt")
)
