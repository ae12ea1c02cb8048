// Package audio is the game's audio port: the orchestrator plays one-shot
// effects and a looping music bed through a small interface, keeping the
// speaker backend out of the simulation. Effects are synthesized with beep
// streamers and pre-rendered into buffers at startup.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundID identifies one of the game's sounds.
type SoundID int

const (
	SoundJump SoundID = iota
	SoundCoin
	SoundCrash
	SoundMusic
)

// Player is the audio port consumed by the game. PlayOneShot restarts the
// effect from the beginning even if a previous instance is still sounding.
type Player interface {
	PlayOneShot(id SoundID)
	PlayLoop(id SoundID)
	Stop(id SoundID)
	Close()
}

// NopPlayer silently discards all audio. Used when speaker initialization
// fails and as the default in tests.
type NopPlayer struct{}

func (NopPlayer) PlayOneShot(SoundID) {}
func (NopPlayer) PlayLoop(SoundID)    {}
func (NopPlayer) Stop(SoundID)        {}
func (NopPlayer) Close()              {}

// BeepPlayer plays synthesized sounds through the speaker.
type BeepPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	buffers map[SoundID]*beep.Buffer
	loops   map[SoundID]*beep.Ctrl
	closed  bool
}

// NewBeepPlayer initializes the speaker and pre-renders every effect at the
// given master volume.
func NewBeepPlayer(masterVolume float64) (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	p := &BeepPlayer{
		mixer:   &beep.Mixer{},
		buffers: make(map[SoundID]*beep.Buffer),
		loops:   make(map[SoundID]*beep.Ctrl),
	}
	for id, gen := range effectGenerators {
		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(gen(masterVolume))
		p.buffers[id] = buf
	}

	speaker.Play(p.mixer)
	return p, nil
}

// PlayOneShot restarts the effect from its first sample.
func (p *BeepPlayer) PlayOneShot(id SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	buf, ok := p.buffers[id]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlayLoop starts the sound looping until Stop. Restarting an already
// looping sound is a no-op.
func (p *BeepPlayer) PlayLoop(id SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if _, looping := p.loops[id]; looping {
		return
	}
	buf, ok := p.buffers[id]
	if !ok {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	p.loops[id] = ctrl
	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop halts a looping sound. One-shots are short enough to run out on
// their own.
func (p *BeepPlayer) Stop(id SoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctrl, ok := p.loops[id]
	if !ok {
		return
	}
	delete(p.loops, id)
	speaker.Lock()
	ctrl.Streamer = nil // the mixer drops drained streamers
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, ctrl := range p.loops {
		ctrl.Streamer = nil
		delete(p.loops, id)
	}
	speaker.Clear()
	speaker.Close()
}
