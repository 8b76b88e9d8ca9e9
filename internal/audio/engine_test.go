package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

func TestEveryCueHasSound(t *testing.T) {
	e := NewEngine(nil, 1)
	for c := sim.Cue(0); c < sim.CueCount; c++ {
		buf := e.sounds[c]
		if len(buf) == 0 {
			t.Errorf("cue %v rendered no samples", c)
			continue
		}
		peak := 0.0
		for _, v := range buf {
			peak = math.Max(peak, math.Abs(v))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("cue %v peak = %v, expected (0, 1]", c, peak)
		}
	}
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  sim.Cue
		want time.Duration
	}{
		{sim.CueGun, 60 * time.Millisecond},
		{sim.CueLevelUp, 340 * time.Millisecond},
		{sim.CueShieldUp, 300 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			got := len(render(cueStreamer(tc.cue)))
			want := sampleRate.N(tc.want)
			if got < want-2 || got > want+2 {
				t.Errorf("samples = %d, expected about %d", got, want)
			}
		})
	}
}

func TestUnknownCueIsSilent(t *testing.T) {
	if cueStreamer(sim.CueCount) != nil {
		t.Error("expected no streamer for an unknown cue")
	}
	if render(nil) != nil {
		t.Error("render(nil) should be empty")
	}
}

func TestFloatToBytes(t *testing.T) {
	in := []float64{0, 0.5, -0.5, 3, -3}
	out := make([]byte, len(in)*bytesPerFrame)
	floatToBytes(in, out)

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(out[i*4:]))
		r := int16(binary.LittleEndian.Uint16(out[i*4+2:]))
		return l, r
	}

	if l, r := sample(0); l != 0 || r != 0 {
		t.Errorf("silence encoded as %d/%d", l, r)
	}
	if l, r := sample(1); l != 16383 || r != l {
		t.Errorf("0.5 encoded as %d/%d", l, r)
	}
	if l, _ := sample(2); l != -16383 {
		t.Errorf("-0.5 encoded as %d", l)
	}
	if l, _ := sample(3); l <= 26000 || l > 32767 {
		t.Errorf("overdriven sample %d should be soft limited", l)
	}
	if l, _ := sample(4); l >= -26000 {
		t.Errorf("overdriven negative sample %d should be soft limited", l)
	}
}

func TestMixVoices(t *testing.T) {
	mix := make([]float64, 4)
	active := []voice{
		{buf: []float64{1, 1}},
		{buf: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}},
	}

	active = mixVoices(active, mix, 0.5)

	want := []float64{0.75, 0.75, 0.25, 0.25}
	for i := range want {
		if math.Abs(mix[i]-want[i]) > 1e-9 {
			t.Errorf("mix[%d] = %v, expected %v", i, mix[i], want[i])
		}
	}
	if len(active) != 1 || active[0].pos != 4 {
		t.Errorf("remaining voices = %+v, expected the long voice at 4", active)
	}
}

func TestPlayIgnoredWhenNotRunning(t *testing.T) {
	e := NewEngine(nil, 1)
	e.Play(sim.CueGun)
	if len(e.queue) != 0 {
		t.Error("cue queued on a stopped engine")
	}
}

func TestPlayNeverBlocks(t *testing.T) {
	e := NewEngine(nil, 1)
	e.running.Store(true) // no mixer draining the queue

	done := make(chan struct{})
	go func() {
		for range queueSize * 3 {
			e.Play(sim.CueSplit)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked on a full queue")
	}
	if _, dropped := e.Stats(); dropped != queueSize*2 {
		t.Errorf("dropped = %d, expected %d", dropped, queueSize*2)
	}
}

func TestMutedEngineDropsCues(t *testing.T) {
	e := NewEngine(nil, 1)
	e.running.Store(true)
	if on := e.ToggleMute(); on {
		t.Fatal("ToggleMute should report sound off")
	}
	e.Play(sim.CueGun)
	if len(e.queue) != 0 {
		t.Error("muted engine queued a cue")
	}
	if on := e.ToggleMute(); !on {
		t.Error("second ToggleMute should report sound on")
	}
}

// syncBuffer is a bytes.Buffer safe for the mixer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func TestMixerWritesPCM(t *testing.T) {
	e := NewEngine(nil, 1)
	out := &syncBuffer{}
	e.startMixer(out)
	e.Play(sim.CueGun)

	deadline := time.Now().Add(2 * time.Second)
	for out.Len() < 3*bufferSamples*bytesPerFrame && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	e.Stop()

	if out.Len()%bytesPerFrame != 0 {
		t.Errorf("partial frame written: %d bytes", out.Len())
	}
	if played, _ := e.Stats(); played != 1 {
		t.Errorf("played = %d, expected 1", played)
	}
}
