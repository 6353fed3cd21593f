// Package runtime owns the load → validate → run lifecycle of one scene.
package runtime

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/asset"
	"github.com/nexgo/runtime/internal/config"
	"github.com/nexgo/runtime/internal/lang"
	"github.com/nexgo/runtime/internal/loop"
	"github.com/nexgo/runtime/internal/render"
	"github.com/nexgo/runtime/internal/scene"
	"github.com/nexgo/runtime/internal/scripting"
	"github.com/nexgo/runtime/internal/subsystem"
)

// Deps are the collaborators a runtime composes. Everything is passed in
// explicitly; the runtime holds no package-level state.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	Registry  *asset.Registry
	Scripting *scripting.Engine // optional; nil = built-in AI only
	Renderer  render.Renderer   // optional; nil = headless log renderer
}

// Runtime drives one loaded scene through the frame loop.
type Runtime struct {
	cfg       *config.Config
	log       *zap.Logger
	registry  *asset.Registry
	scripting *scripting.Engine
	renderer  render.Renderer

	graph       *scene.Graph
	lastLoadErr error
}

func New(deps Deps) *Runtime {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	registry := deps.Registry
	if registry == nil {
		registry = asset.NewRegistry(nil, log)
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = render.NewLogRenderer(log)
	}
	return &Runtime{
		cfg:       cfg,
		log:       log,
		registry:  registry,
		scripting: deps.Scripting,
		renderer:  renderer,
	}
}

// LoadCode parses source text into the scene graph and populates the asset
// registry. Parse failures are reported through the log and as a false
// return; they never propagate past this boundary. A failed load leaves any
// previously loaded scene untouched, so the caller may retry with corrected
// text.
func (r *Runtime) LoadCode(text string) bool {
	g, err := lang.Parse(text)
	if err != nil {
		r.lastLoadErr = err
		var syn *lang.SyntaxError
		if errors.As(err, &syn) {
			r.log.Error("scene rejected", zap.String("reason", syn.Reason))
		} else {
			r.log.Error("scene rejected", zap.Error(err))
		}
		return false
	}

	for _, fail := range r.registry.Load(g.Assets) {
		// Per-asset failures do not fail the load; the handle is absent and
		// the host renderer draws the placeholder.
		r.log.Warn("asset failed to load", zap.String("ref", fail.Ref), zap.Error(fail.Err))
	}

	r.graph = g
	r.lastLoadErr = nil
	r.log.Info("scene loaded",
		zap.String("game", g.Name),
		zap.Int("objects", len(g.Objects)),
		zap.Int("assets", len(g.Assets)),
	)
	return true
}

// LastLoadError returns the typed error behind the most recent LoadCode
// failure, or nil after a success.
func (r *Runtime) LastLoadError() error {
	return r.lastLoadErr
}

// Graph exposes the loaded scene. Owned by this runtime for the duration of
// one run; callers must not share it across concurrent runs.
func (r *Runtime) Graph() *scene.Graph {
	return r.graph
}

// renderSystem adapts the renderer boundary into the subsystem pipeline so
// the fixed order (input, physics, ai, render, audio) is a single sorted
// registry rather than a hard-coded call sequence.
type renderSystem struct {
	renderer render.Renderer
	ui       []scene.UINode
	tick     uint64
}

func (s *renderSystem) Phase() subsystem.Phase { return subsystem.PhaseRender }

func (s *renderSystem) Name() string { return "render" }

func (s *renderSystem) Update(objects []*scene.Object, dt float64) {
	s.tick++
	s.renderer.Render(render.Snapshot(s.tick, objects, s.ui))
}

// Run drives the frame loop until ctx is canceled, then tears everything
// down best-effort. Only valid after a successful LoadCode.
func (r *Runtime) Run(ctx context.Context) error {
	if r.graph == nil {
		return errors.New("run called before a successful load")
	}

	if err := r.renderer.Init(); err != nil {
		return err
	}

	runner := subsystem.NewRunner()
	runner.Register(subsystem.NewInputSystem())
	runner.Register(subsystem.NewPhysicsSystem(r.cfg.Engine.Gravity, r.cfg.Engine.FloorY, r.log))
	runner.Register(subsystem.NewAISystem(r.cfg.Engine.DriftSpeed, r.scripting, r.log))
	runner.Register(&renderSystem{renderer: r.renderer, ui: r.graph.UI})
	runner.Register(subsystem.NewAudioSystem(r.graph.Audio))

	for _, s := range runner.Systems() {
		r.log.Info("subsystem initialized", zap.String("name", s.Name()))
	}

	objects := r.graph.Objects
	sched := loop.NewScheduler(r.cfg.Engine.TickInterval, r.log)
	err := sched.Run(ctx, func(dt float64) {
		runner.Tick(objects, dt)
	})

	// Best-effort teardown: every step runs regardless of the others.
	r.renderer.Shutdown()
	for _, s := range runner.Systems() {
		r.log.Info("subsystem shut down", zap.String("name", s.Name()))
	}
	r.registry.Cleanup()

	return err
}
