package music

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Semitone offsets from C for the natural note letters.
var noteOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

const (
	midiA4 = 69
	freqA4 = 440.0
)

// MIDIToFreq converts a MIDI note number to an equal-temperament frequency
// with A4 = 440Hz.
func MIDIToFreq(note int) float64 {
	return freqA4 * math.Pow(2, float64(note-midiA4)/12)
}

// NoteNameToMIDI converts a note name like "C4", "F#3" or "Bb2" to a MIDI
// note number. Format: <letter><accidental?><octave>, C4 = 60 = middle C.
func NoteNameToMIDI(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("note name too short: %q", name)
	}

	letter := strings.ToUpper(name[:1])[0]
	semitone, ok := noteOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", name)
	}

	idx := 1
	switch name[idx] {
	case '#':
		semitone++
		idx++
	case 'b':
		semitone--
		idx++
	}

	if idx >= len(name) {
		return 0, fmt.Errorf("missing octave in note name %q", name)
	}
	octave, err := strconv.Atoi(name[idx:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note name %q: %w", name, err)
	}

	// (octave+1)*12 gives C-1 = 0, C4 = 60.
	note := (octave+1)*12 + semitone
	if note < 0 {
		note = 0
	}
	if note > 127 {
		note = 127
	}
	return note, nil
}

// NoteNameToFreq converts a note name to a frequency in Hz. Numeric strings
// are passed through as literal frequencies, matching how tools accept either
// "C4" or "261.6".
func NoteNameToFreq(name string) (float64, error) {
	if f, err := strconv.ParseFloat(name, 64); err == nil {
		if f <= 0 {
			return 0, fmt.Errorf("frequency must be positive, got %v", f)
		}
		return f, nil
	}
	note, err := NoteNameToMIDI(name)
	if err != nil {
		return 0, err
	}
	return MIDIToFreq(note), nil
}
