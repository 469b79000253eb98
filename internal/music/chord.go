package music

import (
	"fmt"
	"strings"
)

// Semitone offsets from C for chord roots, including enharmonic spellings.
var rootSemitones = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3,
	"E": 4, "F": 5, "F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10, "B": 11,
}

// ChordToMIDI converts a chord symbol to MIDI note numbers at the given
// octave. Supports symbols like C, Em, Am7, Cmaj7, Fsus4, G5 and slash
// inversions such as Em/G (bass note one octave below).
func ChordToMIDI(symbol string, octave int) ([]int, error) {
	base := symbol
	bass := ""
	if strings.Contains(symbol, "/") {
		parts := strings.SplitN(symbol, "/", 2)
		base = strings.TrimSpace(parts[0])
		bass = strings.TrimSpace(parts[1])
	}

	root, err := parseRoot(base)
	if err != nil {
		return nil, fmt.Errorf("invalid chord %q: %w", symbol, err)
	}
	rootMIDI := (octave+1)*12 + rootSemitones[root]

	intervals := chordIntervals(base[len(root):])

	notes := make([]int, 0, len(intervals)+1)
	for _, interval := range intervals {
		n := rootMIDI + interval
		if n < 0 || n > 127 {
			continue
		}
		notes = append(notes, n)
	}

	if bass != "" {
		bassRoot, err := parseRoot(bass)
		if err != nil {
			return nil, fmt.Errorf("invalid bass note in %q: %w", symbol, err)
		}
		bassMIDI := octave*12 + rootSemitones[bassRoot]
		if bassMIDI >= 0 && bassMIDI <= 127 {
			notes = append([]int{bassMIDI}, notes...)
		}
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("chord %q yields no playable notes", symbol)
	}
	return notes, nil
}

// ChordToFreqs converts a chord symbol to frequencies in Hz.
func ChordToFreqs(symbol string, octave int) ([]float64, error) {
	notes, err := ChordToMIDI(symbol, octave)
	if err != nil {
		return nil, err
	}
	freqs := make([]float64, len(notes))
	for i, n := range notes {
		freqs[i] = MIDIToFreq(n)
	}
	return freqs, nil
}

// ParseProgression splits a dash-delimited progression like "C-G-Am-F" into
// chord symbols, rejecting empty entries.
func ParseProgression(progression string) ([]string, error) {
	raw := strings.Split(progression, "-")
	chords := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, fmt.Errorf("empty chord symbol in progression %q", progression)
		}
		chords = append(chords, c)
	}
	if len(chords) == 0 {
		return nil, fmt.Errorf("empty progression")
	}
	return chords, nil
}

func parseRoot(symbol string) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("empty chord symbol")
	}
	root := symbol[:1]
	if len(symbol) > 1 && (symbol[1] == '#' || symbol[1] == 'b') {
		root = symbol[:2]
	}
	if _, ok := rootSemitones[root]; !ok {
		return "", fmt.Errorf("unknown root note %q", root)
	}
	return root, nil
}

// chordIntervals maps the quality suffix of a chord symbol (everything after
// the root) to semitone intervals. Unknown suffixes default to a major triad,
// mirroring how the synth server treats unknown control names.
func chordIntervals(suffix string) []int {
	quality, rest := parseQuality(suffix)

	var intervals []int
	switch quality {
	case "minor":
		intervals = []int{0, 3, 7}
	case "diminished":
		intervals = []int{0, 3, 6}
	case "augmented":
		intervals = []int{0, 4, 8}
	case "sus2":
		intervals = []int{0, 2, 7}
	case "sus4":
		intervals = []int{0, 5, 7}
	case "power":
		return []int{0, 7}
	default:
		intervals = []int{0, 4, 7}
	}

	for _, ext := range parseExtensions(rest) {
		switch ext {
		case "7":
			intervals = append(intervals, 10)
		case "maj7":
			intervals = append(intervals, 11)
		case "dim7":
			intervals = append(intervals, 9)
		case "9", "add9":
			intervals = append(intervals, 14)
		case "11", "add11":
			intervals = append(intervals, 17)
		case "13", "add13":
			intervals = append(intervals, 21)
		}
	}
	return intervals
}

// parseQuality identifies the triad quality and returns the remaining
// extension text. "maj"/"min" spellings and the bare "m" are all accepted.
func parseQuality(suffix string) (quality, rest string) {
	switch {
	case suffix == "5":
		return "power", ""
	case strings.HasPrefix(suffix, "dim7"):
		return "diminished", "dim7"
	case strings.HasPrefix(suffix, "dim"):
		return "diminished", suffix[3:]
	case strings.HasPrefix(suffix, "aug"):
		return "augmented", suffix[3:]
	case strings.HasPrefix(suffix, "sus2"):
		return "sus2", suffix[4:]
	case strings.HasPrefix(suffix, "sus4"):
		return "sus4", suffix[4:]
	case strings.HasPrefix(suffix, "maj"):
		return "major", suffix
	case strings.HasPrefix(suffix, "min"):
		return "minor", suffix[3:]
	case strings.HasPrefix(suffix, "m"):
		return "minor", suffix[1:]
	default:
		return "major", suffix
	}
}

func parseExtensions(rest string) []string {
	var exts []string
	// maj7 before the bare 7 so "Cmaj7" is not read as a dominant chord.
	for _, marker := range []string{"maj7", "dim7", "add9", "add11", "add13"} {
		if strings.Contains(rest, marker) {
			exts = append(exts, marker)
			rest = strings.ReplaceAll(rest, marker, "")
		}
	}
	for _, marker := range []string{"7", "9", "11", "13"} {
		if strings.Contains(rest, marker) {
			exts = append(exts, marker)
			rest = strings.ReplaceAll(rest, marker, "")
		}
	}
	return exts
}
