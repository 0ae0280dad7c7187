package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// musicGain keeps the background loop under the effects.
const musicGain = 0.35

// Synthesize builds the streamer for a named effect, or nil for unknown names.
// Every returned streamer is finite.
func Synthesize(name string) beep.Streamer {
	switch name {
	case Jump:
		return NewSweep(sampleRate, 320, 640, 120*time.Millisecond, 0.5)
	case Coin:
		return beep.Seq(
			tone(987.77, 70*time.Millisecond, 0.4),
			tone(1318.51, 140*time.Millisecond, 0.4),
		)
	case EnemyDeath:
		return NewSweep(sampleRate, 420, 90, 220*time.Millisecond, 0.5)
	case Hurt:
		return beep.Mix(
			NewSweep(sampleRate, 180, 120, 260*time.Millisecond, 0.5),
			tone(90, 260*time.Millisecond, 0.3),
		)
	case Win:
		return beep.Seq(
			tone(523.25, 120*time.Millisecond, 0.4),
			tone(659.25, 120*time.Millisecond, 0.4),
			tone(783.99, 120*time.Millisecond, 0.4),
			tone(1046.50, 300*time.Millisecond, 0.4),
		)
	default:
		return nil
	}
}

// tone is a sine note of fixed length with a short fade out.
func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return NewFade(beep.Take(sampleRate.N(d), sine), sampleRate.N(d), gain)
}

// Sweep is a sine whose frequency glides linearly from one pitch to another.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, gain: gain, total: sr.N(d)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		env := 1 - progress

		v := g.gain * env * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error { return nil }

// Fade scales a finite streamer by gain and ramps it to zero over its length.
type Fade struct {
	s     beep.Streamer
	gain  float64
	pos   int
	total int
}

// NewFade wraps s, which is expected to produce total samples.
func NewFade(s beep.Streamer, total int, gain float64) *Fade {
	return &Fade{s: s, gain: gain, total: total}
}

func (f *Fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		env := 1.0
		if f.total > 0 {
			env = 1 - float64(f.pos)/float64(f.total)
			if env < 0 {
				env = 0
			}
		}
		samples[i][0] *= f.gain * env
		samples[i][1] *= f.gain * env
		f.pos++
	}
	return n, ok
}

func (f *Fade) Err() error { return f.s.Err() }

// Note is one step of a melody. Freq 0 is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// themeNotes is the background loop, one beat per 200ms.
var themeNotes = []Note{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {659.25, 1},
	{587.33, 1}, {698.46, 1}, {880.00, 2},
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {1046.50, 1},
	{987.77, 1}, {783.99, 1}, {659.25, 2},
	{0, 2},
}

// Melody plays a note sequence forever.
type Melody struct {
	sr      beep.SampleRate
	notes   []Note
	beat    int
	idx     int
	notePos int
	noteLen int
	phase   float64
}

// NewMelody creates an endless melody. An empty note list plays silence.
func NewMelody(sr beep.SampleRate, notes []Note) *Melody {
	m := &Melody{sr: sr, notes: notes, beat: sr.N(200 * time.Millisecond)}
	m.start(0)
	return m
}

func (m *Melody) start(i int) {
	m.idx = i
	m.notePos = 0
	m.noteLen = m.beat
	if len(m.notes) > 0 {
		m.noteLen = int(float64(m.beat) * m.notes[i].Beats)
	}
	if m.noteLen < 1 {
		m.noteLen = 1
	}
}

func (m *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := 0.0
		if len(m.notes) > 0 {
			note := m.notes[m.idx]
			if note.Freq > 0 {
				// 10ms attack and release per note.
				env := math.Min(1, math.Min(float64(m.notePos), float64(m.noteLen-m.notePos))/float64(m.sr.N(10*time.Millisecond)))
				v = 0.3 * env * math.Sin(2*math.Pi*m.phase)
				m.phase += note.Freq / float64(m.sr)
				m.phase -= math.Floor(m.phase)
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		m.notePos++
		if m.notePos >= m.noteLen {
			next := 0
			if len(m.notes) > 0 {
				next = (m.idx + 1) % len(m.notes)
			}
			m.start(next)
		}
	}
	return len(samples), true
}

func (m *Melody) Err() error { return nil }
