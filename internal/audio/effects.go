package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
)

// tone is a finite streamer producing a single waveform, optionally
// sweeping its frequency from freq to endFreq over its duration.
type tone struct {
	freq     float64
	endFreq  float64
	phase    float64
	shape    waveShape
	position int
	total    int
}

func newTone(shape waveShape, freq, endFreq float64, d time.Duration) *tone {
	return &tone{
		freq:    freq,
		endFreq: endFreq,
		shape:   shape,
		total:   sampleRate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}

		var val float64
		switch t.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2*t.phase - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.freq + (t.endFreq-t.freq)*progress
		t.phase += freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies linear attack and release ramps so effects do not click.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration) *fade {
	return &fade{
		streamer: s,
		attack:   sampleRate.N(attack),
		release:  sampleRate.N(release),
		total:    sampleRate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if f.release > 0 && f.position >= f.total-f.release {
			gain = float64(f.total-f.position) / float64(f.release)
			if gain < 0 {
				gain = 0
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales a streamer, treating zero as full silence since the
// volume effect works in log space.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note builds one faded tone, the building block of every effect.
func note(shape waveShape, freq, endFreq float64, d time.Duration, vol float64) beep.Streamer {
	t := newTone(shape, freq, endFreq, d)
	return withVolume(newFade(t, d, 5*time.Millisecond, d/4), vol)
}

// effectGenerators builds each sound at the given master volume.
var effectGenerators = map[SoundID]func(master float64) beep.Streamer{
	// Rising sine sweep as the player leaves the ground.
	SoundJump: func(master float64) beep.Streamer {
		return note(waveSine, 330, 660, 150*time.Millisecond, 0.6*master)
	},
	// Two-note square chime, the classic pickup.
	SoundCoin: func(master float64) beep.Streamer {
		return beep.Seq(
			note(waveSquare, 987.77, 987.77, 80*time.Millisecond, 0.35*master),
			note(waveSquare, 1318.51, 1318.51, 120*time.Millisecond, 0.35*master),
		)
	},
	// Falling saw buzz for the crash.
	SoundCrash: func(master float64) beep.Streamer {
		return note(waveSaw, 220, 55, 450*time.Millisecond, 0.7*master)
	},
	// Four-bar sine arpeggio looped as the music bed.
	SoundMusic: func(master float64) beep.Streamer {
		vol := 0.15 * master
		bar := 280 * time.Millisecond
		return beep.Seq(
			note(waveSine, 261.63, 261.63, bar, vol),
			note(waveSine, 329.63, 329.63, bar, vol),
			note(waveSine, 392.00, 392.00, bar, vol),
			note(waveSine, 329.63, 329.63, bar, vol),
		)
	},
}
