package subsystem

import (
	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/scene"
)

// PhysicsSystem applies constant downward gravity and an inelastic floor
// clamp. No velocity is carried between ticks: displacement is re-derived
// from dt each frame, which is the language's baseline behavior and must be
// preserved.
type PhysicsSystem struct {
	gravity float64 // units/s², positive = down
	floorY  float64
	log     *zap.Logger
}

func NewPhysicsSystem(gravity, floorY float64, log *zap.Logger) *PhysicsSystem {
	return &PhysicsSystem{gravity: gravity, floorY: floorY, log: log}
}

func (s *PhysicsSystem) Phase() Phase { return PhasePhysics }

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Update(objects []*scene.Object, dt float64) {
	for _, obj := range objects {
		obj.Position.Y -= s.gravity * dt
		if obj.Position.Y < s.floorY {
			obj.Position.Y = s.floorY
		}
	}
}
