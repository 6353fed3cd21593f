// Package render defines the boundary to the host renderer. The runtime
// hands over a consistent per-tick snapshot; window lifecycle, camera and
// draw calls belong to the host.
package render

import (
	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/scene"
)

// Default camera offset, carried as frame metadata so a host renderer can
// reproduce the stock view.
var DefaultCamera = scene.Vec3{X: 0, Y: -5, Z: -30}

// ObjectSnapshot is one drawable: a unit wireframe cube at Position, scaled.
type ObjectSnapshot struct {
	Name     string     `json:"name"`
	Position scene.Vec3 `json:"position"`
	Scale    float64    `json:"scale"`
}

// Frame is the per-tick hand-off. Objects keep scene order, which is the
// default render order. Built fresh each tick after all subsystem updates,
// so a renderer never observes a partially updated scene.
type Frame struct {
	Tick    uint64           `json:"tick"`
	Objects []ObjectSnapshot `json:"objects"`
	UI      []string         `json:"ui,omitempty"`
	Camera  scene.Vec3       `json:"camera"`
}

// Snapshot builds a frame from the live object list.
func Snapshot(tick uint64, objects []*scene.Object, ui []scene.UINode) *Frame {
	f := &Frame{
		Tick:    tick,
		Objects: make([]ObjectSnapshot, len(objects)),
		Camera:  DefaultCamera,
	}
	for i, obj := range objects {
		f.Objects[i] = ObjectSnapshot{
			Name:     obj.Name,
			Position: obj.Position,
			Scale:    obj.Scale,
		}
	}
	for _, node := range ui {
		f.UI = append(f.UI, node.Raw)
	}
	return f
}

// Renderer is the external collaborator interface. Init and Shutdown are
// simple paired calls; Render consumes one frame per tick.
type Renderer interface {
	Init() error
	Render(f *Frame)
	Shutdown()
}

// LogRenderer is the default headless renderer: it acknowledges frames on the
// debug channel and draws nothing.
type LogRenderer struct {
	log *zap.Logger
}

func NewLogRenderer(log *zap.Logger) *LogRenderer {
	return &LogRenderer{log: log}
}

func (r *LogRenderer) Init() error {
	r.log.Info("renderer initialized")
	return nil
}

func (r *LogRenderer) Render(f *Frame) {
	r.log.Debug("frame", zap.Uint64("tick", f.Tick), zap.Int("objects", len(f.Objects)))
}

func (r *LogRenderer) Shutdown() {
	r.log.Info("renderer shut down")
}
