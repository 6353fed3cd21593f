package subsystem

import (
	"sort"

	"github.com/nexgo/runtime/internal/scene"
)

// Runner executes systems in phase order each tick. Order is data: systems
// register in any order and the runner sorts by phase, so the pipeline is
// testable and reorderable without touching call sites.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Systems returns the registered systems in execution order.
func (r *Runner) Systems() []System {
	r.ensureSorted()
	return r.systems
}

func (r *Runner) Tick(objects []*scene.Object, dt float64) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(objects, dt)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
