package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping linearly from freq to end.
type oscillator struct {
	freq     float64
	end      float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to end over duration.
func NewSweep(freq, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), uint64(end))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.end-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped oscillator with short attack and release.
func tone(freq, end float64, d time.Duration, wave WaveType) beep.Streamer {
	osc := NewSweep(freq, end, d, wave, sampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, sampleRate)
}

const ms = time.Millisecond

// cueStreamer builds the sound for one cue.
func cueStreamer(c sim.Cue) beep.Streamer {
	switch c {
	case sim.CueGun:
		return newVolume(tone(900, 300, 60*ms, WaveSquare), 0.25)
	case sim.CueShotgun:
		return beep.Mix(
			newVolume(tone(0, 0, 120*ms, WaveNoise), 0.35),
			newVolume(tone(220, 90, 120*ms, WaveSquare), 0.2),
		)
	case sim.CueShieldUp:
		return newVolume(tone(200, 800, 300*ms, WaveSine), 0.4)
	case sim.CueShieldDown:
		return newVolume(tone(800, 200, 300*ms, WaveSine), 0.4)
	case sim.CueLaser:
		return newVolume(tone(1800, 400, 250*ms, WaveSaw), 0.25)
	case sim.CueMulti:
		return newVolume(beep.Seq(
			tone(700, 700, 30*ms, WaveSquare),
			tone(900, 900, 30*ms, WaveSquare),
		), 0.2)
	case sim.CueShrapnel:
		return beep.Mix(
			newVolume(tone(0, 0, 180*ms, WaveNoise), 0.25),
			newVolume(tone(500, 150, 180*ms, WaveSaw), 0.2),
		)
	case sim.CueShotgunPickup, sim.CueShieldPickup, sim.CueLaserPickup,
		sim.CueMultiPickup, sim.CueShrapnelPickup:
		base := 660 + 110*float64(c-sim.CueShotgunPickup)
		return newVolume(beep.Seq(
			tone(base, base, 60*ms, WaveSine),
			tone(base*1.5, base*1.5, 90*ms, WaveSine),
		), 0.35)
	case sim.CueSplit:
		return newVolume(tone(0, 0, 150*ms, WaveNoise), 0.3)
	case sim.CueLevelUp:
		return newVolume(beep.Seq(
			tone(523.25, 523.25, 90*ms, WaveSquare),
			tone(659.25, 659.25, 90*ms, WaveSquare),
			tone(783.99, 783.99, 160*ms, WaveSquare),
		), 0.25)
	case sim.CueExtraLife:
		return newVolume(beep.Seq(
			tone(987.77, 987.77, 80*ms, WaveSquare),
			tone(1318.51, 1318.51, 200*ms, WaveSquare),
		), 0.25)
	case sim.CueLowAmmo:
		return newVolume(tone(120, 100, 150*ms, WaveSaw), 0.35)
	default:
		return nil
	}
}

// render drains s into a mono buffer.
func render(s beep.Streamer) []float64 {
	if s == nil {
		return nil
	}
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, (buf[i][0]+buf[i][1])/2)
		}
		if !ok || n == 0 {
			return out
		}
	}
}
