// Package audio plays synthesized sound effects and background music through
// gopxl/beep. Every method is safe to call when no audio device is present:
// until Initialize succeeds the service silently does nothing.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound names understood by PlaySound.
const (
	Jump       = "jump"
	Coin       = "coin"
	EnemyDeath = "enemy_death"
	Hurt       = "hurt"
	Win        = "win"
)

// Service mixes effects and one looping music track into the speaker.
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	volume      float64
	initialized bool
}

// New creates a service with the given master volume in [0, 1].
func New(volume float64) *Service {
	return &Service{
		mixer:  &beep.Mixer{},
		volume: clamp01(volume),
	}
}

// Initialize opens the speaker. On failure the service stays silent;
// callers are expected to log the error and carry on.
func (s *Service) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// PlaySound starts a one-shot effect. Unknown names are ignored.
func (s *Service) PlaySound(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.volume <= 0 {
		return
	}
	st := Synthesize(name)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(st, s.volume))
	speaker.Unlock()
}

// PlayMusic starts the background loop. Calling it while music is playing
// does nothing.
func (s *Service) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if s.music != nil {
		s.music.Paused = false
		return
	}

	vol := newVolume(NewMelody(sampleRate, themeNotes), s.volume*musicGain)
	s.musicVolume = vol
	s.music = &beep.Ctrl{Streamer: vol, Paused: false}
	s.mixer.Add(s.music)
}

// StopMusic pauses the background loop. Idempotent.
func (s *Service) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
}

// SetVolume sets the master volume, clamped to [0, 1].
// The running music track follows immediately.
func (s *Service) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clamp01(v)
	if s.musicVolume == nil {
		return
	}
	speaker.Lock()
	setVolume(s.musicVolume, s.volume*musicGain)
	speaker.Unlock()
}

// Volume returns the master volume.
func (s *Service) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Cleanup stops everything. The service can be initialized again.
func (s *Service) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()

	s.music = nil
	s.musicVolume = nil
	s.initialized = false
}

// Nop is a silent audio collaborator for tests and headless sessions.
type Nop struct{}

func (Nop) PlaySound(string)  {}
func (Nop) PlayMusic()        {}
func (Nop) StopMusic()        {}
func (Nop) SetVolume(float64) {}

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero gain
// is expressed as Silent.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, gain)
	return v
}

func setVolume(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
