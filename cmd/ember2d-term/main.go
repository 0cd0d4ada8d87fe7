// ember2d-term runs the demo scene on the tcell backend: same world,
// same systems, same fixed-timestep loop, with cells standing in for
// pixels. Useful over SSH and for poking at the engine without a GPU.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/ember2d/asset"
	"github.com/lixenwraith/ember2d/audio"
	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/config"
	"github.com/lixenwraith/ember2d/core"
	"github.com/lixenwraith/ember2d/engine"
	"github.com/lixenwraith/ember2d/input"
	"github.com/lixenwraith/ember2d/render"
	"github.com/lixenwraith/ember2d/systems"
	"github.com/lixenwraith/ember2d/terminal"
	"github.com/lixenwraith/ember2d/vmath"
)

var (
	configFlag = flag.String("config", "ember2d.toml", "Path to TOML config file")
	cellFlag   = flag.Int("cell", 8, "Engine pixels per terminal cell")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	term, err := terminal.New(*cellFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	world := engine.NewWorld()
	// The terminal owns the tty; no logger while it is up
	textures := asset.NewTextures(term, nil)
	player := spawnScene(world, textures, cfg)

	loop := engine.NewLoop(engine.NewMonotonicTimeProvider(), cfg.FixedStep())
	loop.AddSystem(systems.NewControlSystem(world, player, cfg.SpeedPerTick()))
	loop.AddSystem(systems.NewPhysicsSystem(world))

	pass := render.NewPass(world)

	src := input.Source(term)
	if cfg.Audio.Enabled {
		sound := audio.NewEngine()
		if err := sound.Start(); err == nil {
			defer sound.Stop()
			sound.Blip()
			src = input.SourceFunc(func() input.Snapshot {
				snap := term.Poll()
				sound.SetThrust(snap.Active())
				return snap
			})
		}
	}

	// Terminals have no vsync; a ticker stands in for the present/flip
	// wait that bounds the outer loop on the windowed backend
	frameTicker := time.NewTicker(time.Second / 60)
	defer frameTicker.Stop()

	loop.Run(src, func() {
		pass.RenderFrame(term)
		<-frameTicker.C
	})

	world.Reset()
}

// spawnScene mirrors the windowed demo: controllable player at scene
// center, five static sprites at reduced scale
func spawnScene(w *engine.World, textures *asset.Textures, cfg *config.Config) core.Entity {
	tex, tw, th := textures.Acquire("player", 64, 64)

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
