// Package sound plays the synth graph through ebiten's audio context.
package sound

import (
	"fmt"
	"io"
	"log"
	"math"
	"sync"

	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/synth"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Engine mixes the ambient bed and cues into one endless 16-bit stereo stream.
// The ebiten audio goroutine reads it while the game loop adds cues, so the
// mixer is guarded by mu. A nil *Engine is silent.
type Engine struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	ambient *synth.Fader
	buf     [][2]float64
	player  *audio.Player
}

// New wires the synth graph to a new ebiten player. When no audio device can
// be opened it logs a warning and returns a silent engine.
func New() *Engine {
	e := newEngine(beep.SampleRate(cfg.Audio.SampleRate))

	player, err := openPlayer(cfg.Audio.SampleRate, e)
	if err != nil {
		log.Printf("Warning: Could not initialize audio: %v", err)
		return e
	}
	player.SetBufferSize(cfg.Audio.BufferSize)
	player.Play()
	e.player = player
	return e
}

func newEngine(rate beep.SampleRate) *Engine {
	e := &Engine{
		rate:    rate,
		mixer:   &beep.Mixer{},
		ambient: synth.NewFader(synth.Ambient(rate)),
	}
	e.mixer.Add(e.ambient)
	return e
}

// openPlayer reuses the process-wide audio context; ebiten panics when a
// second one is created.
func openPlayer(sampleRate int, src io.Reader) (player *audio.Player, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio context: %v", r)
		}
	}()
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return ctx.NewPlayer(src)
}

// Live reports whether the engine reached an audio device.
func (e *Engine) Live() bool {
	return e != nil && e.player != nil
}

// PlayCue starts a one-shot cue on top of whatever is playing.
func (e *Engine) PlayCue(id cfg.SoundID) {
	if !e.Live() {
		return
	}
	s := synth.Cue(id, e.rate)
	if s == nil {
		return
	}
	e.mu.Lock()
	e.mixer.Add(s)
	e.mu.Unlock()
}

// SetAmbient fades the ambient bed in or out.
func (e *Engine) SetAmbient(on bool) {
	if !e.Live() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if on {
		e.ambient.FadeTo(1, e.rate.N(cfg.Audio.AmbientFadeIn))
	} else {
		e.ambient.FadeTo(0, e.rate.N(cfg.Audio.AmbientFadeOut))
	}
}

// Read renders the mix as little-endian signed 16-bit stereo frames.
func (e *Engine) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}

	e.mu.Lock()
	if cap(e.buf) < frames {
		e.buf = make([][2]float64, frames)
	}
	buf := e.buf[:frames]
	e.mixer.Stream(buf)
	e.mu.Unlock()

	for i, s := range buf {
		l, r := toInt16(s[0]), toInt16(s[1])
		p[i*4] = byte(l)
		p[i*4+1] = byte(l >> 8)
		p[i*4+2] = byte(r)
		p[i*4+3] = byte(r >> 8)
	}
	return frames * 4, nil
}

// Close stops the output.
func (e *Engine) Close() error {
	if !e.Live() {
		return nil
	}
	return e.player.Close()
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
