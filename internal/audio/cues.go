package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound played in response to a user edit.
type Cue int

const (
	// CueAdd plays when a grain is dropped.
	CueAdd Cue = iota
	// CueRemove plays when a grain is taken away.
	CueRemove
	// CueNoop plays when an edit had nothing to do.
	CueNoop
)

var cueByName = map[string]Cue{
	"add":    CueAdd,
	"remove": CueRemove,
	"noop":   CueNoop,
}

func (c Cue) String() string {
	for name, cue := range cueByName {
		if cue == c {
			return name
		}
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

const (
	noteLength = 45 * time.Millisecond
	noteAttack = 5 * time.Millisecond
	buzzLength = 70 * time.Millisecond
)

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueAdd:    {{660, noteLength}, {880, noteLength}},
	CueRemove: {{880, noteLength}, {440, noteLength}},
	CueNoop:   {{120, buzzLength}},
}

// Build synthesizes the streamer for a cue. The result is finite.
func Build(c Cue, cfg *Config) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %v", c)
	}
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %v tone at %.0fHz: %w", c, n.freq, err)
		}
		shaped := newEnvelope(beep.Take(rate.N(n.duration), tone), n.duration, noteAttack, n.duration/2, rate)
		parts = append(parts, shaped)
	}

	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[c]*cfg.MasterVolume), nil
}

// Duration returns how long a cue plays.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
