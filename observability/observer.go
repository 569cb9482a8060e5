// Package observability provides event-based instrumentation for the
// cache engine. Events fire on tier transitions (spill, promote) and
// lifecycle changes (scratch directory creation, clear); in-memory hits
// emit nothing, keeping the hot path free of observer overhead.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of cache event.
type EventType string

const (
	// EventScratchCreate fires when a cache creates its scratch
	// directory on first spill.
	EventScratchCreate EventType = "cache.scratch.create"
	// EventSpill fires when a hot entry is persisted to disk.
	EventSpill EventType = "cache.spill"
	// EventPromote fires when a cold entry is reloaded into memory.
	EventPromote EventType = "cache.promote"
	// EventClear fires after a cache removes all entries and its
	// scratch directory.
	EventClear EventType = "cache.clear"
)

// Event is a single cache lifecycle event.
type Event struct {
	Type   EventType
	Level  slog.Level
	Time   time.Time
	Source string
	Data   map[string]any
}

// Observer receives events for logging or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
