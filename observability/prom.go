package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// PromObserver exports cache events as Prometheus counters.
type PromObserver struct {
	spills      prometheus.Counter
	promotions  prometheus.Counter
	clears      prometheus.Counter
	scratchDirs prometheus.Counter
}

// NewPromObserver creates a PromObserver and registers its collectors
// with reg, or the default registerer when reg is nil. Each namespace
// must be registered at most once per registerer.
func NewPromObserver(namespace string, reg prometheus.Registerer) *PromObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	makeC := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	p := &PromObserver{
		spills:      makeC("spill_total", "Number of entries spilled to disk"),
		promotions:  makeC("promote_total", "Number of entries promoted back to memory"),
		clears:      makeC("clear_total", "Number of full cache clears"),
		scratchDirs: makeC("scratch_create_total", "Number of scratch directories created"),
	}
	reg.MustRegister(p.spills, p.promotions, p.clears, p.scratchDirs)
	return p
}

func (p *PromObserver) OnEvent(_ context.Context, event Event) {
	switch event.Type {
	case EventSpill:
		p.spills.Inc()
	case EventPromote:
		p.promotions.Inc()
	case EventClear:
		p.clears.Inc()
	case EventScratchCreate:
		p.scratchDirs.Inc()
	}
}
