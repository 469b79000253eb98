package pattern

import (
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// ProgressionConfig describes a chord progression. BeatsPerChord sets each
// chord's time slot; the voicing style only redistributes start offsets and
// durations inside that slot, never the pitch content.
type ProgressionConfig struct {
	Progression   string
	Style         string
	Tempo         float64
	BeatsPerChord float64
	Octave        int
}

// Voicing styles. "block" is an alias for pad: every chord tone starts at
// the same offset.
const (
	VoicingPad      = "pad"
	VoicingBlock    = "block"
	VoicingStaccato = "staccato"
	VoicingArpeggio = "arpeggio"
	VoicingPower    = "power"
)

// Progression expands a dash-delimited chord progression into events using
// the selected voicing. Requires no rand source: progressions are fully
// deterministic.
func Progression(cfg ProgressionConfig) (Pattern, error) {
	if err := validateTempo(cfg.Tempo); err != nil {
		return Pattern{}, err
	}
	if cfg.BeatsPerChord <= 0 {
		return Pattern{}, music.Invalidf("duration_per_chord", "must be greater than zero, got %v", cfg.BeatsPerChord)
	}
	switch cfg.Style {
	case VoicingPad, VoicingBlock, VoicingStaccato, VoicingArpeggio, VoicingPower:
	default:
		return Pattern{}, music.Invalidf("style", "unknown voicing %q, supported: pad, block, staccato, arpeggio, power", cfg.Style)
	}

	chords, err := music.ParseProgression(cfg.Progression)
	if err != nil {
		return Pattern{}, music.Invalidf("progression", "%v", err)
	}

	octave := cfg.Octave
	if octave == 0 {
		octave = 4
	}

	slot := time.Duration(cfg.BeatsPerChord * float64(BeatDuration(cfg.Tempo)))
	total := time.Duration(len(chords)) * slot

	var events []music.Event
	for i, symbol := range chords {
		freqs, err := music.ChordToFreqs(symbol, octave)
		if err != nil {
			return Pattern{}, music.Invalidf("progression", "%v", err)
		}
		start := time.Duration(i) * slot
		events = append(events, voiceChord(freqs, cfg.Style, start, slot)...)
	}

	return Pattern{Events: events, Total: total}, nil
}

// voiceChord distributes one chord's tones across its time slot.
func voiceChord(freqs []float64, style string, start, slot time.Duration) []music.Event {
	events := make([]music.Event, 0, len(freqs))

	switch style {
	case VoicingArpeggio:
		// Strictly increasing starts; small gap after each note.
		noteSlot := slot / time.Duration(len(freqs))
		for i, f := range freqs {
			events = append(events, music.Event{
				Freq:     f,
				Velocity: 0.3,
				Start:    start + time.Duration(i)*noteSlot,
				Duration: noteSlot * 9 / 10,
			})
		}

	case VoicingStaccato:
		for i, f := range freqs {
			events = append(events, music.Event{
				Freq:     f,
				Velocity: edgeVelocity(i, len(freqs), 0.4, 0.3),
				Pan:      spreadPan(i, len(freqs), 0.6),
				Start:    start,
				Duration: slot / 4,
			})
		}

	case VoicingPower:
		// Root and fifth only, louder. The chord table guarantees the root
		// is first and the fifth (7 semitones up) is present for triads.
		root := freqs[0]
		fifth := root * 1.4983 // 2^(7/12)
		events = append(events,
			music.Event{Freq: root, Velocity: 0.5, Start: start, Duration: slot},
			music.Event{Freq: fifth, Velocity: 0.4, Start: start, Duration: slot},
		)

	default: // pad, block
		for i, f := range freqs {
			events = append(events, music.Event{
				Freq:     f,
				Velocity: edgeVelocity(i, len(freqs), 0.3, 0.2),
				Pan:      spreadPan(i, len(freqs), 0.8),
				Start:    start,
				Duration: slot,
			})
		}
	}

	return events
}

// edgeVelocity makes the outer voices of a chord louder than inner ones.
func edgeVelocity(i, n int, outer, inner float64) float64 {
	if i == 0 || i == n-1 {
		return outer
	}
	return inner
}

// spreadPan places n voices evenly across [-width, width].
func spreadPan(i, n int, width float64) float64 {
	if n <= 1 {
		return 0
	}
	return -width + (float64(i)/float64(n-1))*2*width
}
