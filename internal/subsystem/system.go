package subsystem

import "github.com/nexgo/runtime/internal/scene"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput   Phase = iota // 0: poll host input
	PhasePhysics              // 1: gravity + collision
	PhaseAI                   // 2: behavior decisions
	PhaseRender               // 3: frame hand-off to the host renderer
	PhaseAudio                // 4: audio hook
)

// System is one per-tick update over the shared object list. Updates run
// synchronously on the single loop goroutine; a system must not touch state
// outside the objects it is handed.
type System interface {
	Phase() Phase
	Name() string
	Update(objects []*scene.Object, dt float64)
}
