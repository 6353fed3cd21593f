package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Assets  AssetsConfig  `toml:"assets"`
	Scripts ScriptsConfig `toml:"scripts"`
	Viewer  ViewerConfig  `toml:"viewer"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	TickInterval time.Duration `toml:"tick_interval"` // fixed post-tick sleep, not load-adjusted
	Gravity      float64       `toml:"gravity"`       // units/s², applied downward on Y
	FloorY       float64       `toml:"floor_y"`       // inelastic floor clamp
	DriftSpeed   float64       `toml:"drift_speed"`   // built-in enemy drift, units/s
}

type AssetsConfig struct {
	ManifestPath string `toml:"manifest_path"` // optional YAML catalog; "" = placeholders only
}

type ScriptsConfig struct {
	Dir string `toml:"dir"` // behavior script directory; "" = built-in AI only
}

type ViewerConfig struct {
	Enabled     bool   `toml:"enabled"`
	BindAddress string `toml:"bind_address"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TickInterval: 16 * time.Millisecond, // ~60 Hz
			Gravity:      9.8,
			FloorY:       0,
			DriftSpeed:   1.0,
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Viewer: ViewerConfig{
			Enabled:     false,
			BindAddress: "127.0.0.1:7920",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
