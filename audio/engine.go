package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine provides the demo's synthesized sound feedback: a short blip at
// startup and a low noise bed while movement input is held. All sounds
// are generated, no assets. Initialization failure degrades to silent
// mode; playback calls are then no-ops, never errors.
type Engine struct {
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	initialized bool
}

// NewEngine creates a stopped audio engine
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Start opens the speaker and wires the persistent thrust bed, paused.
// An unavailable audio device leaves the engine in silent mode.
func (e *Engine) Start() error {
	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	bed := NewOscillator(0, -1, WaveNoise, sampleRate)
	quiet := &effects.Volume{Streamer: bed, Base: 2, Volume: -4}
	e.thrust = &beep.Ctrl{Streamer: quiet, Paused: true}
	e.mixer.Add(e.thrust)

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Stop silences and detaches everything
func (e *Engine) Stop() {
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.thrust.Paused = true
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// SetThrust toggles the movement noise bed
func (e *Engine) SetThrust(active bool) {
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.thrust.Paused = !active
	speaker.Unlock()
}

// Blip plays a short sine cue (used at startup)
func (e *Engine) Blip() {
	if !e.initialized {
		return
	}
	tone := NewOscillator(880, 120*time.Millisecond, WaveSine, sampleRate)
	shaped := NewEnvelope(tone, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate)

	speaker.Lock()
	e.mixer.Add(shaped)
	speaker.Unlock()
}
