package subsystem

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/scene"
	"github.com/nexgo/runtime/internal/scripting"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPhysicsFloorClamp(t *testing.T) {
	phys := NewPhysicsSystem(9.8, 0, zap.NewNop())

	cases := []struct {
		y0, dt, want float64
	}{
		{10, 0.1, 10 - 9.8*0.1},
		{0.5, 1.0, 0}, // would go negative, clamps to floor
		{0, 1.0, 0},   // idempotent at the floor
	}
	for _, tc := range cases {
		obj := scene.NewObject("Crate")
		obj.Position.Y = tc.y0
		phys.Update([]*scene.Object{obj}, tc.dt)
		if !almostEqual(obj.Position.Y, tc.want) {
			t.Errorf("y0=%v dt=%v: y = %v, want %v", tc.y0, tc.dt, obj.Position.Y, tc.want)
		}
	}
}

func TestPhysicsClampIsIdempotent(t *testing.T) {
	phys := NewPhysicsSystem(9.8, 0, zap.NewNop())
	obj := scene.NewObject("Crate")
	for i := 0; i < 5; i++ {
		phys.Update([]*scene.Object{obj}, 1.0)
		if obj.Position.Y != 0 {
			t.Fatalf("tick %d: y = %v, want 0", i, obj.Position.Y)
		}
	}
}

func TestAIDriftSelectivity(t *testing.T) {
	ai := NewAISystem(1.0, nil, zap.NewNop())

	for _, name := range []string{"Enemy", "enemy", "ENEMY"} {
		obj := scene.NewObject(name)
		ai.Update([]*scene.Object{obj}, 0.25)
		if !almostEqual(obj.Position.X, -0.25) {
			t.Errorf("%s: x = %v, want -0.25", name, obj.Position.X)
		}
	}

	player := scene.NewObject("Player")
	ai.Update([]*scene.Object{player}, 0.25)
	if player.Position.X != 0 {
		t.Errorf("Player drifted: x = %v", player.Position.X)
	}
}

func TestAIScriptedBehaviorOverridesBuiltin(t *testing.T) {
	eng, err := scripting.NewEngine("", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()
	script := `
function object_behavior(ctx)
    if string.lower(ctx.name) == "enemy" then
        return { { type = "move", vx = -2.0, vy = 0.5 } }
    end
    return {}
end
`
	if err := eng.DoString(script); err != nil {
		t.Fatal(err)
	}

	ai := NewAISystem(1.0, eng, zap.NewNop())
	enemy := scene.NewObject("Enemy")
	player := scene.NewObject("Player")
	ai.Update([]*scene.Object{enemy, player}, 0.5)

	if !almostEqual(enemy.Position.X, -1.0) || !almostEqual(enemy.Position.Y, 0.25) {
		t.Fatalf("enemy position = %+v", enemy.Position)
	}
	if player.Position != (scene.Vec3{}) {
		t.Fatalf("player moved: %+v", player.Position)
	}
}

type orderProbe struct {
	phase Phase
	name  string
	seen  *[]string
}

func (p *orderProbe) Phase() Phase { return p.phase }
func (p *orderProbe) Name() string { return p.name }
func (p *orderProbe) Update(objects []*scene.Object, dt float64) {
	*p.seen = append(*p.seen, p.name)
}

func TestRunnerExecutesInPhaseOrder(t *testing.T) {
	var seen []string
	r := NewRunner()
	// Register out of order on purpose.
	r.Register(&orderProbe{phase: PhaseAudio, name: "audio", seen: &seen})
	r.Register(&orderProbe{phase: PhaseInput, name: "input", seen: &seen})
	r.Register(&orderProbe{phase: PhaseRender, name: "render", seen: &seen})
	r.Register(&orderProbe{phase: PhaseAI, name: "ai", seen: &seen})
	r.Register(&orderProbe{phase: PhasePhysics, name: "physics", seen: &seen})

	r.Tick(nil, 0.016)

	want := []string{"input", "physics", "ai", "render", "audio"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("order = %v, want %v", seen, want)
		}
	}
}

func TestScenarioAfterOneTickEach(t *testing.T) {
	// Player and Enemy both start at the origin.
	objects := []*scene.Object{scene.NewObject("Player"), scene.NewObject("Enemy")}

	phys := NewPhysicsSystem(9.8, 0, zap.NewNop())
	phys.Update(objects, 1.0)
	for _, obj := range objects {
		if obj.Position.Y != 0 {
			t.Fatalf("%s: y = %v, want clamped 0", obj.Name, obj.Position.Y)
		}
	}

	ai := NewAISystem(1.0, nil, zap.NewNop())
	ai.Update(objects, 1.0)
	if !almostEqual(objects[1].Position.X, -1.0) {
		t.Fatalf("Enemy x = %v, want -1", objects[1].Position.X)
	}
	if objects[0].Position.X != 0 {
		t.Fatalf("Player x = %v, want 0", objects[0].Position.X)
	}
}
