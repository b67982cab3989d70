package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
)

// Sound plays a short click through the system speaker. A nil or
// uninitialized Sound is silent.
type Sound struct {
	mu          sync.Mutex
	initialized bool
}

// NewSound creates a silent Sound. Call Initialize to open the speaker.
func NewSound() *Sound {
	return &Sound{}
}

// Initialize opens the speaker.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Play starts one click.
func (s *Sound) Play() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), NewClickGenerator(sampleRate, clickFreq)))
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Close()
	s.initialized = false
}

// ClickGenerator streams a sine tone with a fast exponential decay.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click at freq Hz.
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*60)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
