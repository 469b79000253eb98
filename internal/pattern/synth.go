package pattern

import (
	"math"
	"math/rand"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// LayeredConfig describes a detuned multi-oscillator stack. Detune in [0,1]
// spreads the layers around the base pitch; Duration is in seconds.
type LayeredConfig struct {
	BaseNote string
	Layers   int
	Detune   float64
	Duration float64
}

// Layered builds 1-5 simultaneous layers: pitches spread evenly across the
// detune range, the center layer loudest, and the stack fanned across the
// stereo field.
func Layered(cfg LayeredConfig) (Pattern, error) {
	if cfg.Layers < 1 || cfg.Layers > 5 {
		return Pattern{}, music.Invalidf("num_layers", "must be between 1 and 5, got %d", cfg.Layers)
	}
	if cfg.Detune < 0 || cfg.Detune > 1 {
		return Pattern{}, music.Invalidf("detune", "must be between 0.0 and 1.0, got %v", cfg.Detune)
	}
	if cfg.Duration < 1 || cfg.Duration > 30 {
		return Pattern{}, music.Invalidf("duration", "must be between 1 and 30 seconds, got %v", cfg.Duration)
	}

	baseFreq, err := music.NoteNameToFreq(cfg.BaseNote)
	if err != nil {
		return Pattern{}, music.Invalidf("base_note", "%v", err)
	}

	total := Seconds(cfg.Duration)
	events := make([]music.Event, 0, cfg.Layers)
	for i := 0; i < cfg.Layers; i++ {
		detuneFactor := 1.0
		amp := 0.3
		pan := 0.0
		if cfg.Layers > 1 {
			spread := 2 * cfg.Detune / float64(cfg.Layers-1)
			detuneFactor = 1 - cfg.Detune + float64(i)*spread
			centerDist := math.Abs(float64(i)-float64(cfg.Layers-1)/2) / float64(cfg.Layers-1)
			amp = 0.3 * (1 - centerDist*0.5)
			pan = -0.8 + (float64(i)/float64(cfg.Layers-1))*1.6
		}
		events = append(events, music.Event{
			Freq:     baseFreq * detuneFactor,
			Velocity: amp,
			Pan:      pan,
			Start:    0,
			Duration: total,
		})
	}

	return Pattern{Events: events, Total: total}, nil
}

// GranularConfig describes a granular texture. Density in [0.1,1] sets
// grains per second (density x 20), GrainSize the nominal grain length in
// seconds, PitchSpread in [0,1] the per-grain pitch jitter.
type GranularConfig struct {
	SourceNote  string
	Density     float64
	GrainSize   float64
	PitchSpread float64
	Duration    float64
}

// Granular scatters short grains across the duration. Grains at the edges of
// the pitch spread are attenuated, and every grain is panned independently.
func Granular(cfg GranularConfig, rng *rand.Rand) (Pattern, error) {
	if cfg.Density < 0.1 || cfg.Density > 1 {
		return Pattern{}, music.Invalidf("density", "must be between 0.1 and 1.0, got %v", cfg.Density)
	}
	if cfg.GrainSize < 0.01 || cfg.GrainSize > 0.5 {
		return Pattern{}, music.Invalidf("grain_size", "must be between 0.01 and 0.5 seconds, got %v", cfg.GrainSize)
	}
	if cfg.PitchSpread < 0 || cfg.PitchSpread > 1 {
		return Pattern{}, music.Invalidf("pitch_spread", "must be between 0.0 and 1.0, got %v", cfg.PitchSpread)
	}
	if cfg.Duration < 1 || cfg.Duration > 30 {
		return Pattern{}, music.Invalidf("duration", "must be between 1 and 30 seconds, got %v", cfg.Duration)
	}

	baseFreq, err := music.NoteNameToFreq(cfg.SourceNote)
	if err != nil {
		return Pattern{}, music.Invalidf("source_note", "%v", err)
	}

	grainsPerSecond := cfg.Density * 20
	interval := Seconds(1 / grainsPerSecond)
	// Lower densities get slightly longer grains for continuity.
	grainDur := Seconds(cfg.GrainSize * (1.2 - cfg.Density*0.2))
	total := Seconds(cfg.Duration)

	var events []music.Event
	for start := time.Duration(0); start < total; start += interval {
		variation := 1 + (rng.Float64()*2-1)*cfg.PitchSpread

		amp := 0.2
		if cfg.PitchSpread > 0 {
			amp *= 1 - (math.Abs(variation-1)/cfg.PitchSpread)*0.5
		}

		dur := grainDur
		if start+dur > total {
			dur = total - start
		}

		events = append(events, music.Event{
			Freq:     baseFreq * variation,
			Velocity: amp,
			Pan:      rng.Float64()*1.6 - 0.8,
			Start:    start,
			Duration: dur,
		})
	}

	return Pattern{Events: events, Total: total}, nil
}
