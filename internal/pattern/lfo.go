package pattern

import (
	"math"
	"math/rand"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// LFOConfig describes a low-frequency modulation of one synth parameter.
// Rate is in Hz, Depth in [0,1], Duration in seconds.
type LFOConfig struct {
	Target   string
	Rate     float64
	Depth    float64
	Waveform string
	Duration float64
}

// ControlPoint is one sampled value of a modulation curve, sent to the
// server as an /n_set at its offset.
type ControlPoint struct {
	Offset time.Duration
	Value  float64
}

// ControlCurve is a sampled modulation of a single synth parameter, applied
// to a node created with the given base value.
type ControlCurve struct {
	Param  string // server-side control name
	Base   float64
	Points []ControlPoint
	Total  time.Duration
}

// lfoTargets maps user-facing parameter names to server controls and the
// value range a full-depth sweep covers.
type lfoTarget struct {
	param string
	base  float64
	min   func(depth float64) float64
	max   func(depth float64) float64
}

var lfoTargets = map[string]lfoTarget{
	"frequency": {
		param: "freq", base: 440,
		min: func(d float64) float64 { return 440 * (1 - d*0.5) },
		max: func(d float64) float64 { return 440 * (1 + d*0.5) },
	},
	"amplitude": {
		param: "amp", base: 0.5,
		min: func(d float64) float64 { return 0.5 * (1 - d) },
		max: func(float64) float64 { return 0.5 },
	},
	"filter": {
		param: "cutoff", base: 1000,
		min: func(float64) float64 { return 100 },
		max: func(d float64) float64 { return 100 + d*3900 },
	},
	"pan": {
		param: "pan", base: 0,
		min: func(d float64) float64 { return -d },
		max: func(d float64) float64 { return d },
	},
}

// LFO samples a modulation waveform into a control curve. The update step is
// a twentieth of a cycle capped at 50ms, so fast LFOs stay smooth without
// flooding the server.
func LFO(cfg LFOConfig, rng *rand.Rand) (ControlCurve, error) {
	target, ok := lfoTargets[cfg.Target]
	if !ok {
		return ControlCurve{}, music.Invalidf("target_param", "unknown target %q, supported: frequency, amplitude, filter, pan", cfg.Target)
	}
	switch cfg.Waveform {
	case "sine", "triangle", "square", "random":
	default:
		return ControlCurve{}, music.Invalidf("waveform", "unknown waveform %q, supported: sine, triangle, square, random", cfg.Waveform)
	}
	if cfg.Rate < 0.01 || cfg.Rate > 10 {
		return ControlCurve{}, music.Invalidf("rate", "must be between 0.01 and 10.0 Hz, got %v", cfg.Rate)
	}
	if cfg.Depth < 0 || cfg.Depth > 1 {
		return ControlCurve{}, music.Invalidf("depth", "must be between 0.0 and 1.0, got %v", cfg.Depth)
	}
	if cfg.Duration < 1 || cfg.Duration > 60 {
		return ControlCurve{}, music.Invalidf("duration", "must be between 1 and 60 seconds, got %v", cfg.Duration)
	}

	cycle := 1 / cfg.Rate
	step := cycle / 20
	if step > 0.05 {
		step = 0.05
	}

	total := Seconds(cfg.Duration)
	stepDur := Seconds(step)
	lo := target.min(cfg.Depth)
	hi := target.max(cfg.Depth)

	var points []ControlPoint
	held := rng.Float64() // sample-and-hold state for the random waveform
	lastCycle := -1
	for offset := time.Duration(0); offset < total; offset += stepDur {
		elapsed := offset.Seconds()
		phase := math.Mod(elapsed*cfg.Rate, 1)

		var norm float64
		switch cfg.Waveform {
		case "triangle":
			if phase < 0.5 {
				norm = phase * 2
			} else {
				norm = 1 - (phase-0.5)*2
			}
		case "square":
			if phase < 0.5 {
				norm = 1
			}
		case "random":
			if c := int(elapsed * cfg.Rate); c != lastCycle {
				held = rng.Float64()
				lastCycle = c
			}
			norm = held
		default: // sine
			norm = (math.Sin(elapsed*cfg.Rate*2*math.Pi) + 1) / 2
		}

		points = append(points, ControlPoint{
			Offset: offset,
			Value:  lo + norm*(hi-lo),
		})
	}

	return ControlCurve{
		Param:  target.param,
		Base:   target.base,
		Points: points,
		Total:  total,
	}, nil
}
