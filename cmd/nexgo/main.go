package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nexgo/runtime/internal/asset"
	"github.com/nexgo/runtime/internal/config"
	"github.com/nexgo/runtime/internal/render"
	"github.com/nexgo/runtime/internal/render/viewer"
	nexruntime "github.com/nexgo/runtime/internal/runtime"
	"github.com/nexgo/runtime/internal/scripting"
	"github.com/nexgo/runtime/internal/source"
)

// demoSource is the bundled scene used when no source file is given.
const demoSource = `
game SpaceBattle {
    import "ship.obj"
    import "enemy_ship.obj"

    object Player { position=(0,10,0) }
    object Enemy { position=(10,20,5) }

    ui HUD {
        panel topLeft { text "Score: 0" }
    }

    audio {
        bgm = "space_theme.mp3"
        sfx = ["laser.wav", "explosion.wav"]
    }
}
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/nexgo.toml"
	if p := os.Getenv("NEXGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = config.Defaults()
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load scene source: file argument, or the bundled demo.
	text := demoSource
	if len(os.Args) > 1 {
		text, err = source.Load(os.Args[1])
		if err != nil {
			return err
		}
		log.Info("source loaded", zap.String("path", os.Args[1]))
	} else {
		log.Info("no source given, running bundled demo scene")
	}

	// 4. Asset manifest (optional) + registry
	var manifest *asset.Manifest
	if cfg.Assets.ManifestPath != "" {
		manifest, err = asset.LoadManifest(cfg.Assets.ManifestPath)
		if err != nil {
			return err
		}
		log.Info("asset manifest loaded", zap.Int("entries", manifest.Count()))
	}
	registry := asset.NewRegistry(manifest, log)

	// 5. Behavior scripts
	engine, err := scripting.NewEngine(cfg.Scripts.Dir, log)
	if err != nil {
		return err
	}
	defer engine.Close()

	// 6. Renderer: websocket viewer when enabled, headless otherwise.
	var renderer render.Renderer = render.NewLogRenderer(log)
	if cfg.Viewer.Enabled {
		renderer = viewer.NewServer(cfg.Viewer.BindAddress, log)
	}

	// 7. Compose the runtime and load the scene.
	rt := nexruntime.New(nexruntime.Deps{
		Config:    cfg,
		Log:       log,
		Registry:  registry,
		Scripting: engine,
		Renderer:  renderer,
	})
	if !rt.LoadCode(text) {
		return fmt.Errorf("scene load failed: %w", rt.LastLoadError())
	}

	// 8. Run until interrupted.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rt.Run(ctx)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
