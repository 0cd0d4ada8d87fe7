package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/ember2d/asset"
	"github.com/lixenwraith/ember2d/audio"
	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/config"
	"github.com/lixenwraith/ember2d/core"
	"github.com/lixenwraith/ember2d/engine"
	"github.com/lixenwraith/ember2d/input"
	"github.com/lixenwraith/ember2d/render"
	"github.com/lixenwraith/ember2d/systems"
	"github.com/lixenwraith/ember2d/vmath"
	"github.com/lixenwraith/ember2d/window"
)

var (
	configFlag  = flag.String("config", "ember2d.toml", "Path to TOML config file")
	textureFlag = flag.String("texture", "player.png", "Sprite image for the demo scene")
	profileFlag = flag.Bool("profile", false, "Write a CPU profile to the working directory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	world := engine.NewWorld()
	textures := asset.NewTextures(window.FileLoader{}, log)
	player := spawnScene(world, textures, cfg, *textureFlag)

	loop := engine.NewLoop(engine.NewMonotonicTimeProvider(), cfg.FixedStep())
	loop.AddSystem(systems.NewControlSystem(world, player, cfg.SpeedPerTick()))
	loop.AddSystem(systems.NewPhysicsSystem(world))

	app := window.NewApp(loop, render.NewPass(world), cfg.Window.Width, cfg.Window.Height)

	if cfg.Audio.Enabled {
		sound := audio.NewEngine()
		if err := sound.Start(); err != nil {
			log.Warn("audio unavailable, continuing silent", zap.Error(err))
		} else {
			defer sound.Stop()
			sound.Blip()
			app.OnFrame = func(in input.Snapshot, ticks int) {
				sound.SetThrust(in.Active())
			}
		}
	}

	log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tick_rate", cfg.Simulation.TickRate),
		zap.Int("entities", world.EntityCount()))

	if err := app.Run(cfg.Window.Title); err != nil {
		log.Error("window loop failed", zap.Error(err))
		os.Exit(1)
	}

	world.Reset()
	log.Info("shutdown complete")
}

// spawnScene builds the demo: a controllable player at screen center and
// five static sprites sharing its texture at reduced scale
func spawnScene(w *engine.World, textures *asset.Textures, cfg *config.Config, texturePath string) core.Entity {
	tex, tw, th := textures.Acquire(texturePath, 64, 64)

	player := w.CreateEntity()
	tr, _ := w.Transforms.Get(player)
	tr.Pos = vmath.Vec2{
		X: float64(cfg.Window.Width) / 2,
		Y: float64(cfg.Window.Height) / 2,
	}
	w.Transforms.Set(player, tr)
	w.Bodies.Set(player, component.Body{Mass: 1})
	w.Sprites.Set(player, component.Sprite{Tex: tex, W: tw, H: th})

	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		tr, _ := w.Transforms.Get(e)
		tr.Pos = vmath.Vec2{
			X: 100 + float64(i)*120,
			Y: 150 + float64(i%2)*80,
		}
		tr.Scale = vmath.Vec2{X: 0.8, Y: 0.8}
		w.Transforms.Set(e, tr)
		w.Sprites.Set(e, component.Sprite{Tex: tex, W: tw, H: th})
	}

	return player
}

// newLogger builds a zap logger from the config's level and format
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
