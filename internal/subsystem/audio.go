package subsystem

import "github.com/nexgo/runtime/internal/scene"

// AudioSystem is the per-tick audio hook. The base runtime performs no mixing;
// the system exists to hold the opaque audio config blob and mark the
// extension point for a real backend.
type AudioSystem struct {
	config map[string]string
}

func NewAudioSystem(config map[string]string) *AudioSystem {
	return &AudioSystem{config: config}
}

func (s *AudioSystem) Phase() Phase { return PhaseAudio }

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Update(objects []*scene.Object, dt float64) {}

// Config exposes the audio blob for a host backend.
func (s *AudioSystem) Config() map[string]string { return s.config }
