package subsystem

import "github.com/nexgo/runtime/internal/scene"

// InputSystem is the per-tick input hook. The pressed-key set is placeholder
// state for a future host poller; nothing populates or reads it yet.
type InputSystem struct {
	pressed map[string]struct{}
}

func NewInputSystem() *InputSystem {
	return &InputSystem{pressed: make(map[string]struct{})}
}

func (s *InputSystem) Phase() Phase { return PhaseInput }

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Update(objects []*scene.Object, dt float64) {}
