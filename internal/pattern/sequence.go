package pattern

import (
	"strings"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// SequenceConfig describes a note sequence written in the dash-delimited
// mini language: "C4-E4-G4-C5". Each "_" suffix halves a note again
// ("C4__" is a third of a beat), each "+" adds half a beat, and "." is a
// one-beat rest.
type SequenceConfig struct {
	Notes   string
	Tempo   float64
	Repeats int
}

type sequenceStep struct {
	freq     float64 // 0 for rests
	duration time.Duration
}

// Sequence parses the pattern string and lays its notes end to end,
// repeating the whole phrase Repeats times. Notes sound for 95% of their
// step for separation; rests just advance time.
func Sequence(cfg SequenceConfig) (Pattern, error) {
	if err := validateTempo(cfg.Tempo); err != nil {
		return Pattern{}, err
	}
	if cfg.Repeats < 1 {
		return Pattern{}, music.Invalidf("repeats", "must be at least 1, got %d", cfg.Repeats)
	}

	steps, err := parseSequence(cfg.Notes, BeatDuration(cfg.Tempo))
	if err != nil {
		return Pattern{}, err
	}

	var events []music.Event
	var cursor time.Duration
	for r := 0; r < cfg.Repeats; r++ {
		for _, step := range steps {
			if step.freq > 0 {
				events = append(events, music.Event{
					Freq:     step.freq,
					Velocity: 0.3,
					Start:    cursor,
					Duration: step.duration * 95 / 100,
				})
			}
			cursor += step.duration
		}
	}

	return Pattern{Events: events, Total: cursor}, nil
}

func parseSequence(notes string, beat time.Duration) ([]sequenceStep, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, nil
	}

	var steps []sequenceStep
	for _, token := range strings.Split(notes, "-") {
		token = strings.TrimSpace(token)
		if token == "" || token == "." {
			steps = append(steps, sequenceStep{duration: beat})
			continue
		}

		mod := 1.0
		name := token
		if n := strings.Count(token, "_"); n > 0 {
			mod = 1.0 / float64(n+1)
			name = strings.ReplaceAll(token, "_", "")
		} else if n := strings.Count(token, "+"); n > 0 {
			mod = 1.0 + float64(n)*0.5
			name = strings.ReplaceAll(token, "+", "")
		}

		freq, err := music.NoteNameToFreq(name)
		if err != nil {
			return nil, music.Invalidf("pattern", "bad note %q: %v", token, err)
		}
		steps = append(steps, sequenceStep{
			freq:     freq,
			duration: time.Duration(mod * float64(beat)),
		})
	}
	return steps, nil
}
