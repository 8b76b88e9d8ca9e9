// Package audio synthesises sound cues with beep and streams them as raw PCM
// to a system player. When no player is available the engine stays silent.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

const (
	bufferDuration = 20 * time.Millisecond
	bytesPerFrame  = 4 // s16le stereo
	queueSize      = 32
)

var bufferSamples = sampleRate.N(bufferDuration)

// Engine plays sim cues. It implements sim.CuePlayer; Play never blocks and
// drops cues when the queue is full.
type Engine struct {
	logger *log.Logger
	volume float64
	sounds [sim.CueCount][]float64

	queue   chan sim.Cue
	stop    chan struct{}
	wg      sync.WaitGroup
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	running atomic.Bool
	muted   atomic.Bool
	silent  atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewEngine creates an engine and renders every cue up front.
func NewEngine(logger *log.Logger, volume float64) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		logger: logger,
		volume: volume,
		queue:  make(chan sim.Cue, queueSize),
		stop:   make(chan struct{}),
	}
	for c := sim.Cue(0); c < sim.CueCount; c++ {
		e.sounds[c] = render(cueStreamer(c))
	}
	return e
}

// Start launches a detected backend. A missing or failing backend puts the
// engine in silent mode and is not an error.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio: engine already running")
	}

	backend, err := DetectBackend()
	if err != nil {
		e.logger.Debug("audio disabled", "reason", err)
		e.silent.Store(true)
		e.running.Store(true)
		return nil
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.silent.Store(true)
		e.running.Store(true)
		return nil
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		e.logger.Debug("audio backend failed to start", "backend", backend.Name, "err", err)
		e.silent.Store(true)
		e.running.Store(true)
		return nil
	}
	e.cmd = cmd
	e.stdin = stdin
	e.logger.Info("audio started", "backend", backend.Name)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := cmd.Wait(); err != nil && e.running.Load() {
			e.silent.Store(true)
		}
	}()

	e.startMixer(stdin)
	return nil
}

// startMixer runs the mixing loop writing PCM to out.
func (e *Engine) startMixer(out io.Writer) {
	e.running.Store(true)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.loop(out)
	}()
}

// Stop terminates the mixer and the backend process.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	close(e.stop)
	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill() //nolint:errcheck
	}
	e.wg.Wait()
	e.logger.Debug("audio stopped", "played", e.played.Load(), "dropped", e.dropped.Load())
}

// Play queues c for playback.
func (e *Engine) Play(c sim.Cue) {
	if !e.running.Load() || e.muted.Load() || e.silent.Load() || c >= sim.CueCount {
		return
	}
	select {
	case e.queue <- c:
	default:
		e.dropped.Add(1)
	}
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (e *Engine) ToggleMute() bool {
	on := e.muted.Load()
	e.muted.Store(!on)
	return on
}

// SetMuted sets the mute state.
func (e *Engine) SetMuted(m bool) { e.muted.Store(m) }

// Muted reports whether the engine is muted.
func (e *Engine) Muted() bool { return e.muted.Load() }

// Silent reports whether no backend is available.
func (e *Engine) Silent() bool { return e.silent.Load() }

// Stats returns how many cues were mixed and how many were dropped.
func (e *Engine) Stats() (played, dropped uint64) {
	return e.played.Load(), e.dropped.Load()
}

type voice struct {
	buf []float64
	pos int
}

func (e *Engine) loop(out io.Writer) {
	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	mix := make([]float64, bufferSamples)
	pcm := make([]byte, bufferSamples*bytesPerFrame)
	var active []voice

	for {
		select {
		case <-e.stop:
			return
		case c := <-e.queue:
			if buf := e.sounds[c]; len(buf) > 0 {
				active = append(active, voice{buf: buf})
				e.played.Add(1)
			}
		case <-ticker.C:
			clear(mix)
			active = mixVoices(active, mix, e.volume)
			floatToBytes(mix, pcm)
			if _, err := out.Write(pcm); err != nil {
				e.silent.Store(true)
				e.logger.Warn("audio output closed", "err", err)
				return
			}
		}
	}
}

// mixVoices adds one buffer's worth of each voice into mix and returns the
// voices that still have samples left.
func mixVoices(active []voice, mix []float64, volume float64) []voice {
	remaining := active[:0]
	for _, v := range active {
		for j := 0; j < len(mix) && v.pos < len(v.buf); j++ {
			mix[j] += v.buf[v.pos] * volume
			v.pos++
		}
		if v.pos < len(v.buf) {
			remaining = append(remaining, v)
		}
	}
	return remaining
}

// floatToBytes converts mono floats to interleaved stereo int16 LE with a
// soft limiter above 0.8.
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}
		v = max(-1, min(1, v))

		s := uint16(int16(v * 32767))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
}
