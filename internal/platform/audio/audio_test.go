package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestEveryCueHasAVoice(t *testing.T) {
	for _, c := range []core.Cue{core.CueFire, core.CueKill, core.CueDestroyed, core.CueLevelComplete} {
		v, ok := voices[c]
		if !ok {
			t.Errorf("cue %d has no voice", c)
			continue
		}
		if v.length <= 0 || v.from <= 0 || v.to <= 0 {
			t.Errorf("cue %d voice %+v is silent", c, v)
		}
	}
}

func TestSweepEnvelope(t *testing.T) {
	v := voice{from: 440, to: 880, length: 50 * time.Millisecond}
	s := newSweep(sampleRate, v, 0.5)
	samples := make([][2]float64, sampleRate.N(v.length))

	n, ok := s.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream() = %d, %v; expected %d, true", n, ok, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence", samples[0][0])
	}
	for i, smp := range samples {
		if math.Abs(smp[0]) > 0.5 || smp[0] != smp[1] {
			t.Fatalf("sample %d = %v, expected mono within volume", i, smp)
		}
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample = %v, expected fade out", last)
	}
}

func TestTakeBoundsSweep(t *testing.T) {
	v := voices[core.CueFire]
	streamer := beep.Take(sampleRate.N(v.length), newSweep(sampleRate, v, 1))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != sampleRate.N(v.length) {
		t.Errorf("streamed %d samples, expected %d", total, sampleRate.N(v.length))
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	p := NewPlayer(2)
	if p.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", p.volume)
	}
	// Without a speaker every call is a no-op.
	p.Play(core.CueKill)
	p.Close()
}
