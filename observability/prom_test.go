package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromObserver_CountsByType(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPromObserver("test", reg)

	ctx := context.Background()
	obs.OnEvent(ctx, Event{Type: EventScratchCreate})
	obs.OnEvent(ctx, Event{Type: EventSpill})
	obs.OnEvent(ctx, Event{Type: EventSpill})
	obs.OnEvent(ctx, Event{Type: EventPromote})
	obs.OnEvent(ctx, Event{Type: EventClear})
	obs.OnEvent(ctx, Event{Type: EventType("cache.unknown")})

	tests := []struct {
		name    string
		counter prometheus.Counter
		want    float64
	}{
		{name: "scratch_create_total", counter: obs.scratchDirs, want: 1},
		{name: "spill_total", counter: obs.spills, want: 2},
		{name: "promote_total", counter: obs.promotions, want: 1},
		{name: "clear_total", counter: obs.clears, want: 1},
	}

	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.counter); got != tt.want {
			t.Errorf("%s = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestNewPromObserver_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPromObserver("test", reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	// Counters without observations still gather.
	if len(families) != 4 {
		t.Errorf("gathered %d metric families, want 4", len(families))
	}
}
