// Package audio plays short synthesized cues for sim events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"heartmaze/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// noteLength is the duration of one note within a cue.
const noteLength = 70 * time.Millisecond

// melodies maps cues to note frequencies in Hz.
var melodies = map[core.Cue][]float64{
	core.CueCollect: {1046.5},
	core.CuePowerUp: {523.3, 659.3, 784.0},
	core.CueBanish:  {784.0, 1046.5},
	core.CueSweep:   {392.0, 523.3, 659.3, 784.0, 1046.5},
	core.CueExpire:  {659.3, 523.3},
	core.CueWin:     {523.3, 659.3, 784.0, 1046.5, 1318.5},
	core.CueLose:    {392.0, 329.6, 261.6},
}

// Player mixes cue tones onto the speaker. The zero value is not usable;
// call NewPlayer. All methods are safe without a successful Initialize.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer returns a player at the given volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: clamp01(volume)}
}

// Initialize opens the speaker. It is a no-op when already open.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the tone for cue. Unknown cues are silent.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.volume == 0 {
		return
	}
	notes, ok := melodies[cue]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewTone(sampleRate, notes, noteLength, p.volume))
	speaker.Unlock()
}

// PlayAll queues every cue in order.
func (p *Player) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}

// Cleanup silences pending tones.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// Tone streams a sequence of enveloped sine notes, then ends.
type Tone struct {
	sr     beep.SampleRate
	notes  []float64
	per    int
	volume float64
	pos    int
}

// NewTone builds a tone of notes, each lasting length.
func NewTone(sr beep.SampleRate, notes []float64, length time.Duration, volume float64) *Tone {
	return &Tone{sr: sr, notes: notes, per: max(sr.N(length), 1), volume: clamp01(volume)}
}

// Len is the total number of samples the tone produces.
func (t *Tone) Len() int { return t.per * len(t.notes) }

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	total := t.Len()
	if t.pos >= total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= total {
			return i, true
		}
		note := t.notes[t.pos/t.per]
		local := t.pos % t.per
		x := float64(local) / float64(t.sr)
		// fast attack, linear release within each note
		env := math.Min(float64(local)/float64(t.sr.N(5*time.Millisecond)+1), 1) * (1 - float64(local)/float64(t.per))
		v := 0.25 * t.volume * env * math.Sin(2*math.Pi*note*x)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
