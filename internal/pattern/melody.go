package pattern

import (
	"math/rand"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// MelodyConfig describes a scale-walk melody. Notes is the event count;
// zero produces an empty pattern. Direction selects how the walk moves
// through the scale degrees.
type MelodyConfig struct {
	Scale     string
	Tempo     float64
	Notes     int
	Direction string
}

const melodyVelocity = 0.3

// Direction policies for scale walks.
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionUpDown = "updown"
	DirectionRandom = "random"
)

// Melody walks the configured scale and emits one event per beat, each
// lasting 90% of the beat for note separation. The root note and octave are
// drawn from rng, so pitches stay within one scale span above the root.
func Melody(cfg MelodyConfig, rng *rand.Rand) (Pattern, error) {
	scale, ok := music.LookupScale(cfg.Scale)
	if !ok {
		return Pattern{}, music.Invalidf("scale", "unknown scale %q, supported: %v", cfg.Scale, music.ScaleNames())
	}
	if err := validateTempo(cfg.Tempo); err != nil {
		return Pattern{}, err
	}
	if cfg.Notes < 0 {
		return Pattern{}, music.Invalidf("notes", "must not be negative, got %d", cfg.Notes)
	}

	degrees, err := walkDegrees(cfg.Direction, len(scale.Intervals), cfg.Notes, rng)
	if err != nil {
		return Pattern{}, err
	}

	beat := BeatDuration(cfg.Tempo)
	total := time.Duration(cfg.Notes) * beat

	// Root somewhere in the C4 octave keeps the walk inside the audible
	// melodic register regardless of scale span.
	rootMIDI := 48 + rng.Intn(12)

	events := make([]music.Event, 0, cfg.Notes)
	for i, degree := range degrees {
		note := rootMIDI + scale.Intervals[degree]
		events = append(events, music.Event{
			Freq:     music.MIDIToFreq(note),
			Velocity: melodyVelocity,
			Start:    time.Duration(i) * beat,
			Duration: beat * 9 / 10,
		})
	}

	return Pattern{Events: events, Total: total}, nil
}

// ScaleRun produces a straight run through the scale for the CLI scale
// command: up, down, or up then down.
func ScaleRun(scaleName string, tempo float64, direction string, rng *rand.Rand) (Pattern, error) {
	scale, ok := music.LookupScale(scaleName)
	if !ok {
		return Pattern{}, music.Invalidf("scale", "unknown scale %q, supported: %v", scaleName, music.ScaleNames())
	}
	if err := validateTempo(tempo); err != nil {
		return Pattern{}, err
	}

	var degrees []int
	switch direction {
	case DirectionUp, "":
		for i := range scale.Intervals {
			degrees = append(degrees, i)
		}
	case DirectionDown:
		for i := len(scale.Intervals) - 1; i >= 0; i-- {
			degrees = append(degrees, i)
		}
	case "both":
		for i := range scale.Intervals {
			degrees = append(degrees, i)
		}
		for i := len(scale.Intervals) - 2; i >= 0; i-- {
			degrees = append(degrees, i)
		}
	default:
		return Pattern{}, music.Invalidf("direction", "unknown direction %q, supported: up, down, both", direction)
	}

	beat := BeatDuration(tempo)
	rootMIDI := 48 + rng.Intn(12)

	events := make([]music.Event, 0, len(degrees))
	for i, degree := range degrees {
		events = append(events, music.Event{
			Freq:     music.MIDIToFreq(rootMIDI + scale.Intervals[degree]),
			Velocity: melodyVelocity,
			Start:    time.Duration(i) * beat,
			Duration: beat * 9 / 10,
		})
	}
	return Pattern{Events: events, Total: time.Duration(len(degrees)) * beat}, nil
}

// walkDegrees produces the scale-degree index sequence for a direction
// policy. The random policy is a bounded walk: steps of at most two degrees,
// clamped to the scale, never leaving the interval table.
func walkDegrees(direction string, scaleLen, count int, rng *rand.Rand) ([]int, error) {
	degrees := make([]int, 0, count)
	switch direction {
	case DirectionUp:
		for i := 0; i < count; i++ {
			degrees = append(degrees, i%scaleLen)
		}
	case DirectionDown:
		for i := 0; i < count; i++ {
			degrees = append(degrees, scaleLen-1-i%scaleLen)
		}
	case DirectionUpDown:
		// Ping-pong over the degree range without repeating turnaround notes.
		period := 2*scaleLen - 2
		if period < 1 {
			period = 1
		}
		for i := 0; i < count; i++ {
			pos := i % period
			if pos >= scaleLen {
				pos = period - pos
			}
			degrees = append(degrees, pos)
		}
	case DirectionRandom, "":
		pos := rng.Intn(scaleLen)
		for i := 0; i < count; i++ {
			degrees = append(degrees, pos)
			pos += rng.Intn(5) - 2
			if pos < 0 {
				pos = 0
			}
			if pos >= scaleLen {
				pos = scaleLen - 1
			}
		}
	default:
		return nil, music.Invalidf("direction", "unknown direction %q, supported: up, down, updown, random", direction)
	}
	return degrees, nil
}
