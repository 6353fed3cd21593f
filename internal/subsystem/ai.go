package subsystem

import (
	"strings"

	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/scene"
	"github.com/nexgo/runtime/internal/scripting"
)

// AISystem drives per-object behavior. When a Lua behavior script is loaded
// the decision logic lives there (Go packs the context, Lua decides, Go
// integrates the returned velocities over dt). Without a script the built-in
// behavior applies: any object named "enemy", case-insensitively, drifts left
// at a fixed speed.
type AISystem struct {
	driftSpeed float64           // units/s
	engine     *scripting.Engine // may be nil
	log        *zap.Logger
}

func NewAISystem(driftSpeed float64, engine *scripting.Engine, log *zap.Logger) *AISystem {
	return &AISystem{driftSpeed: driftSpeed, engine: engine, log: log}
}

func (s *AISystem) Phase() Phase { return PhaseAI }

func (s *AISystem) Name() string { return "ai" }

func (s *AISystem) Update(objects []*scene.Object, dt float64) {
	scripted := s.engine != nil && s.engine.HasBehavior()
	for _, obj := range objects {
		if !scripted {
			s.builtin(obj, dt)
			continue
		}
		cmds := s.engine.RunBehavior(scripting.ObjectContext{
			Name:  obj.Name,
			X:     obj.Position.X,
			Y:     obj.Position.Y,
			Z:     obj.Position.Z,
			Scale: obj.Scale,
			Dt:    dt,
		})
		if cmds == nil {
			// Script failed mid-run; keep the frame moving.
			s.builtin(obj, dt)
			continue
		}
		for _, cmd := range cmds {
			switch cmd.Type {
			case "move":
				obj.Position.X += cmd.VX * dt
				obj.Position.Y += cmd.VY * dt
				obj.Position.Z += cmd.VZ * dt
			case "idle":
			default:
				s.log.Warn("unknown behavior command", zap.String("type", cmd.Type), zap.String("object", obj.Name))
			}
		}
	}
}

// builtin is the fixed leftward enemy drift: no pathfinding, no targeting.
func (s *AISystem) builtin(obj *scene.Object, dt float64) {
	if strings.EqualFold(obj.Name, "enemy") {
		obj.Position.X -= s.driftSpeed * dt
	}
}
