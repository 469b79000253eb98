package pattern

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// SoundscapeConfig describes an ambient texture. Duration is in seconds,
// Density in [0,1] scales how many overlapping events are emitted.
type SoundscapeConfig struct {
	Duration   float64
	Density    float64
	PitchRange string
	Mood       string
}

type moodParams struct {
	baseFreqLow  float64
	baseFreqHigh float64
	amplitude    float64
	harmonics    []float64
	durLow       float64 // event duration bounds in seconds
	durHigh      float64
}

// Mood tables: harmonic sets range from consonant (calm) to clustered and
// inharmonic (chaotic).
var moods = map[string]moodParams{
	"calm":       {100, 200, 0.3, []float64{1.0, 2.0, 3.0}, 2.0, 8.0},
	"dark":       {60, 150, 0.4, []float64{1.0, 1.5, 2.5, 3.5}, 3.0, 10.0},
	"bright":     {200, 400, 0.25, []float64{1.0, 2.0, 4.0, 8.0}, 1.0, 5.0},
	"mysterious": {80, 300, 0.35, []float64{1.0, 1.7, 2.3, 3.3}, 4.0, 12.0},
	"chaotic":    {100, 500, 0.5, []float64{1.0, 1.3, 2.1, 2.7, 3.4}, 0.5, 4.0},
}

var pitchRanges = map[string][2]float64{
	"low":    {50, 200},
	"medium": {200, 800},
	"high":   {800, 3200},
	"full":   {50, 3200},
}

// Soundscape produces a background drone covering the full duration plus a
// density-scaled set of harmonically related events. Event onsets fall inside
// the first 80% of the duration and no event rings past the end.
func Soundscape(cfg SoundscapeConfig, rng *rand.Rand) (Pattern, error) {
	mood, ok := moods[cfg.Mood]
	if !ok {
		return Pattern{}, music.Invalidf("mood", "unknown mood %q, supported: calm, dark, bright, mysterious, chaotic", cfg.Mood)
	}
	freqRange, ok := pitchRanges[cfg.PitchRange]
	if !ok {
		return Pattern{}, music.Invalidf("pitch_range", "unknown pitch range %q, supported: low, medium, high, full", cfg.PitchRange)
	}
	if cfg.Duration < 10 || cfg.Duration > 120 {
		return Pattern{}, music.Invalidf("duration", "must be between 10 and 120 seconds, got %v", cfg.Duration)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return Pattern{}, music.Invalidf("density", "must be between 0.0 and 1.0, got %v", cfg.Density)
	}

	total := Seconds(cfg.Duration)
	baseFreq := mood.baseFreqLow + rng.Float64()*(mood.baseFreqHigh-mood.baseFreqLow)

	numEvents := int(cfg.Duration * cfg.Density * 0.5)
	if numEvents < 3 {
		numEvents = 3
	}
	if numEvents > 20 {
		numEvents = 20
	}

	events := make([]music.Event, 0, numEvents+1)

	// Background drone for the whole scape.
	events = append(events, music.Event{
		Freq:     baseFreq,
		Velocity: mood.amplitude * 0.5,
		Start:    0,
		Duration: total,
	})

	for i := 0; i < numEvents; i++ {
		start := time.Duration(rng.Float64() * 0.8 * float64(total))

		harmonic := mood.harmonics[rng.Intn(len(mood.harmonics))]
		freq := clampFloat(baseFreq*harmonic, freqRange[0], freqRange[1])

		dur := Seconds(mood.durLow + rng.Float64()*(mood.durHigh-mood.durLow))
		if start+dur > total {
			dur = total - start
		}
		if dur <= 0 {
			continue
		}

		events = append(events, music.Event{
			Freq:     freq,
			Velocity: mood.amplitude * (0.5 + rng.Float64()*0.5),
			Start:    start,
			Duration: dur,
		})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Start < events[j].Start })
	return Pattern{Events: events, Total: total}, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
