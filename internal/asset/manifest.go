package asset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry describes one asset known to the host backend.
type ManifestEntry struct {
	Ref  string `yaml:"ref"`
	Kind string `yaml:"kind"` // mesh, texture, audio
	Path string `yaml:"path"`
}

type manifestFile struct {
	Assets []ManifestEntry `yaml:"assets"`
}

// Manifest holds asset metadata indexed by reference string.
type Manifest struct {
	entries map[string]*ManifestEntry
}

// LoadManifest loads an asset catalog from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset manifest: %w", err)
	}
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse asset manifest: %w", err)
	}
	m := &Manifest{entries: make(map[string]*ManifestEntry, len(f.Assets))}
	for i := range f.Assets {
		e := &f.Assets[i]
		m.entries[e.Ref] = e
	}
	return m, nil
}

// Get returns the manifest entry for a reference, or nil if not cataloged.
func (m *Manifest) Get(ref string) *ManifestEntry {
	if m == nil {
		return nil
	}
	return m.entries[ref]
}

// Count returns the number of cataloged assets.
func (m *Manifest) Count() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}
