// Package audio plays short procedural sound effects for gameplay cues.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// voice describes the frequency sweep played for a cue.
type voice struct {
	from, to float64 // Hz
	length   time.Duration
}

var voices = map[core.Cue]voice{
	core.CueFire:          {from: 1200, to: 700, length: 60 * time.Millisecond},
	core.CueKill:          {from: 300, to: 90, length: 160 * time.Millisecond},
	core.CueDestroyed:     {from: 160, to: 40, length: 700 * time.Millisecond},
	core.CueLevelComplete: {from: 440, to: 1320, length: 500 * time.Millisecond},
}

// Player mixes cue sounds into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Volume is clamped to [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker. Until it succeeds Play does nothing.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the sound for c.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume == 0 {
		return
	}
	v, ok := voices[c]
	if !ok {
		return
	}

	streamer := beep.Take(sampleRate.N(v.length), newSweep(sampleRate, v, p.volume))
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// sweep is a sine tone gliding between two frequencies with a short fade in
// and a linear fade out.
type sweep struct {
	sr     beep.SampleRate
	v      voice
	volume float64
	total  int
	pos    int
	phase  float64
}

func newSweep(sr beep.SampleRate, v voice, volume float64) *sweep {
	total := sr.N(v.length)
	if total < 1 {
		total = 1
	}
	return &sweep{sr: sr, v: v, volume: volume, total: total}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(s.sr.N(5 * time.Millisecond))
	for i := range samples {
		progress := math.Min(float64(s.pos)/float64(s.total), 1)
		freq := s.v.from + (s.v.to-s.v.from)*progress

		envelope := 1 - progress
		if attack > 0 {
			envelope = math.Min(envelope, float64(s.pos)/attack)
		}

		sample := math.Sin(s.phase) * envelope * s.volume
		samples[i][0] = sample
		samples[i][1] = sample

		s.phase += 2 * math.Pi * freq / float64(s.sr)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}
