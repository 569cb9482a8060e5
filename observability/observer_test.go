package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tailored-agentic-units/spillover/observability"
)

type countingObserver struct {
	count int
	last  observability.Event
}

func (c *countingObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.count++
	c.last = event
}

func spillEvent() observability.Event {
	return observability.Event{
		Type:   observability.EventSpill,
		Level:  slog.LevelDebug,
		Time:   time.Now(),
		Source: "cache",
		Data:   map[string]any{"key": "a"},
	}
}

func TestNoOpObserver_OnEvent(t *testing.T) {
	var obs observability.Observer = observability.NoOpObserver{}
	obs.OnEvent(context.Background(), spillEvent())
}

func TestMultiObserver_FansOut(t *testing.T) {
	first := &countingObserver{}
	second := &countingObserver{}
	multi := observability.NewMultiObserver(first, second)

	event := spillEvent()
	multi.OnEvent(context.Background(), event)
	multi.OnEvent(context.Background(), event)

	if first.count != 2 || second.count != 2 {
		t.Errorf("counts = %d, %d, want 2, 2", first.count, second.count)
	}
	if first.last.Type != observability.EventSpill {
		t.Errorf("last event type = %q, want %q", first.last.Type, observability.EventSpill)
	}
}

func TestMultiObserver_SkipsNil(t *testing.T) {
	inner := &countingObserver{}
	multi := observability.NewMultiObserver(nil, inner, nil)

	multi.OnEvent(context.Background(), spillEvent())

	if inner.count != 1 {
		t.Errorf("count = %d, want 1", inner.count)
	}
}

func TestSlogObserver_OnEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := observability.NewSlogObserver(logger)

	obs.OnEvent(context.Background(), spillEvent())

	out := buf.String()
	for _, want := range []string{"cache.spill", "source=cache", "key=a", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestSlogObserver_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	obs := observability.NewSlogObserver(logger)

	obs.OnEvent(context.Background(), spillEvent()) // debug-level event

	if buf.Len() != 0 {
		t.Errorf("debug event logged below handler level: %q", buf.String())
	}
}

func TestGetObserver_Preregistered(t *testing.T) {
	for _, name := range []string{"noop", "slog"} {
		obs, err := observability.GetObserver(name)
		if err != nil {
			t.Errorf("GetObserver(%q) error = %v", name, err)
		}
		if obs == nil {
			t.Errorf("GetObserver(%q) = nil", name)
		}
	}
}

func TestGetObserver_Unknown(t *testing.T) {
	if _, err := observability.GetObserver("bogus"); err == nil {
		t.Error("GetObserver(bogus) error = nil, want error")
	}
}

func TestRegisterObserver(t *testing.T) {
	inner := &countingObserver{}
	observability.RegisterObserver("counting-test", inner)

	obs, err := observability.GetObserver("counting-test")
	if err != nil {
		t.Fatalf("GetObserver() error = %v", err)
	}
	obs.OnEvent(context.Background(), spillEvent())
	if inner.count != 1 {
		t.Errorf("count = %d, want 1", inner.count)
	}
}
