package pattern

import (
	"math/rand"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// RhythmConfig describes an evolving generative rhythm. Duration is in
// seconds; Intensity in [0,1] scales every style parameter up or down.
type RhythmConfig struct {
	Style     string
	Duration  float64
	Tempo     float64
	Intensity float64
}

type rhythmStyle struct {
	pulseRate     float64 // probability a grid hit actually sounds
	variationRate float64 // probability the grids evolve each 16 beats
	complexity    float64 // bit-flip probability during evolution
	syncopation   float64 // off-grid accent probability
	swing         float64 // off-beat timing push, fraction of half a beat
}

var rhythmStyles = map[string]rhythmStyle{
	"minimal": {0.8, 0.2, 0.3, 0.2, 0.1},
	"techno":  {0.9, 0.3, 0.5, 0.4, 0.2},
	"glitch":  {0.7, 0.8, 0.9, 0.7, 0.3},
	"jazz":    {0.6, 0.5, 0.7, 0.8, 0.7},
	"ambient": {0.4, 0.2, 0.2, 0.1, 0.05},
}

// Seed grids per style. Glitch starts from random grids instead.
var rhythmSeeds = map[string][3][16]int{
	"minimal": {
		{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	},
	"techno": {
		{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
	"jazz": {
		{1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	},
	"ambient": {
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
	},
}

var accentFreqs = []float64{800, 1600, 2400}

// GenerativeRhythm renders an evolving drum texture: the grids mutate every
// 16 beats in proportion to the style's complexity, off-beats are pushed by
// the swing factor, and random accents land per the syncopation setting.
func GenerativeRhythm(cfg RhythmConfig, rng *rand.Rand) (Pattern, error) {
	style, ok := rhythmStyles[cfg.Style]
	if !ok {
		return Pattern{}, music.Invalidf("style", "unknown rhythm style %q, supported: minimal, techno, glitch, jazz, ambient", cfg.Style)
	}
	if err := validateTempo(cfg.Tempo); err != nil {
		return Pattern{}, err
	}
	if cfg.Duration < 5 || cfg.Duration > 120 {
		return Pattern{}, music.Invalidf("duration", "must be between 5 and 120 seconds, got %v", cfg.Duration)
	}
	if cfg.Intensity < 0 || cfg.Intensity > 1 {
		return Pattern{}, music.Invalidf("intensity", "must be between 0.0 and 1.0, got %v", cfg.Intensity)
	}

	// Intensity scales every style parameter between 70% and 130%.
	scale := 0.7 + cfg.Intensity*0.6
	style = rhythmStyle{
		pulseRate:     capAtOne(style.pulseRate * scale),
		variationRate: capAtOne(style.variationRate * scale),
		complexity:    capAtOne(style.complexity * scale),
		syncopation:   capAtOne(style.syncopation * scale),
		swing:         capAtOne(style.swing * scale),
	}

	beat := BeatDuration(cfg.Tempo)
	numBeats := int(Seconds(cfg.Duration) / beat)
	if numBeats < 1 {
		return Pattern{Total: 0}, nil
	}
	total := time.Duration(numBeats) * beat

	grids, ok := rhythmSeeds[cfg.Style]
	if !ok {
		grids = randomGrids(rng)
	}

	var events []music.Event
	for b := 0; b < numBeats; b++ {
		if b%16 == 0 && b > 0 && rng.Float64() < style.variationRate {
			evolveGrids(&grids, style.complexity, rng)
		}

		step := b % 16
		start := time.Duration(b) * beat
		if step%2 == 1 {
			// Swing: push off-beats late by up to half a beat.
			start += time.Duration(style.swing * 0.5 * float64(beat))
		}

		dur := beat * 9 / 10
		if start+dur > total {
			dur = total - start
		}

		for v, voice := range drumVoices {
			if grids[v][step] == 1 && rng.Float64() < style.pulseRate {
				events = append(events, music.Event{
					Freq:     voice.freq,
					Velocity: voice.velocity,
					Start:    start,
					Duration: dur,
				})
			}
		}

		if rng.Float64() < style.syncopation*0.2 {
			events = append(events, music.Event{
				Freq:     accentFreqs[rng.Intn(len(accentFreqs))],
				Velocity: 0.15,
				Start:    start,
				Duration: dur,
			})
		}
	}

	return Pattern{Events: events, Total: total}, nil
}

// evolveGrids flips grid bits in place. The hihat line mutates faster than
// the kick, keeping the pulse recognizable while the top end churns.
func evolveGrids(grids *[3][16]int, complexity float64, rng *rand.Rand) {
	rates := []float64{0.5, 0.3, 0.7} // kick, snare, hihat
	for v := range grids {
		for s := range grids[v] {
			if rng.Float64() < complexity*rates[v] {
				grids[v][s] = 1 - grids[v][s]
			}
		}
	}
}

func capAtOne(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
