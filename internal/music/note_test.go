package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMIDIToFreq(t *testing.T) {
	tests := []struct {
		name string
		note int
		want float64
	}{
		{name: "A4 concert pitch", note: 69, want: 440.0},
		{name: "A5 one octave up", note: 81, want: 880.0},
		{name: "A3 one octave down", note: 57, want: 220.0},
		{name: "middle C", note: 60, want: 261.6256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MIDIToFreq(tt.note), 0.001)
		})
	}
}

func TestNoteNameToMIDI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "middle C", input: "C4", want: 60},
		{name: "concert A", input: "A4", want: 69},
		{name: "sharp", input: "F#3", want: 54},
		{name: "flat", input: "Bb2", want: 46},
		{name: "lowercase letter", input: "c4", want: 60},
		{name: "negative octave", input: "C-1", want: 0},
		{name: "clamped high", input: "C12", want: 127},
		{name: "missing octave", input: "C#", wantErr: true},
		{name: "bad letter", input: "H4", wantErr: true},
		{name: "too short", input: "C", wantErr: true},
		{name: "garbage octave", input: "Cx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NoteNameToMIDI(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoteNameToFreq(t *testing.T) {
	t.Run("note name", func(t *testing.T) {
		got, err := NoteNameToFreq("A4")
		require.NoError(t, err)
		assert.InDelta(t, 440.0, got, 0.001)
	})

	t.Run("numeric passthrough", func(t *testing.T) {
		got, err := NoteNameToFreq("523.25")
		require.NoError(t, err)
		assert.InDelta(t, 523.25, got, 0.001)
	})

	t.Run("non-positive frequency rejected", func(t *testing.T) {
		_, err := NoteNameToFreq("-100")
		require.Error(t, err)
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		_, err := NoteNameToFreq("doremi")
		require.Error(t, err)
	})
}
