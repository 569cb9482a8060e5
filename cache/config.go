package cache

import "github.com/tailored-agentic-units/spillover/observability"

// Config holds constructor-time parameters for a Cache. The zero value
// is valid: unbounded capacity, gob serialization, scratch space under
// the system temp directory, no hook, no observer.
type Config[K comparable, V any] struct {
	// Capacity bounds the hot tier. Zero or negative means unbounded,
	// in which case nothing ever spills and the cache behaves as a
	// plain map — useful for sizing experiments.
	Capacity int

	// ScratchDir is the parent under which the instance's scratch
	// directory is created. Empty means the system temp directory.
	ScratchDir string

	// Codec serializes spilled values. Nil means GobCodec.
	Codec Codec[V]

	// OnPromote is invoked exactly once per promotion with the reloaded
	// entry, after the promotion has fully succeeded. It never fires
	// for entries that stay in memory, and Put never fires it.
	OnPromote func(key K, value V)

	// Observer receives lifecycle events (scratch creation, spill,
	// promote, clear). Nil disables emission.
	Observer observability.Observer
}
