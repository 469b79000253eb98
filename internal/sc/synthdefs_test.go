package sc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

func TestLookupSynth(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		synth, err := LookupSynth("fm", Effects{})
		require.NoError(t, err)
		assert.Equal(t, "fm", synth.Type)
	})

	t.Run("empty defaults to sine", func(t *testing.T) {
		synth, err := LookupSynth("", Effects{})
		require.NoError(t, err)
		assert.Equal(t, "sine", synth.Type)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := LookupSynth("wavetable", Effects{})
		var verr *music.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("effects carried through", func(t *testing.T) {
		synth, err := LookupSynth("pad", Effects{Reverb: 0.7})
		require.NoError(t, err)
		assert.Equal(t, 0.7, synth.Effects.Reverb)
	})
}

func TestEffectsValidate(t *testing.T) {
	tests := []struct {
		name    string
		effects Effects
		wantErr bool
	}{
		{name: "zero value", effects: Effects{}},
		{name: "all maxed", effects: Effects{Reverb: 1, Delay: 1, Distortion: 1, Filter: 1}},
		{name: "reverb too high", effects: Effects{Reverb: 1.1}, wantErr: true},
		{name: "negative delay", effects: Effects{Delay: -0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.effects.Validate()
			if tt.wantErr {
				assertValidation(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	var verr *music.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSynthNames(t *testing.T) {
	assert.Equal(t, []string{"fm", "noise", "pad", "saw", "sine", "square"}, SynthNames())
}

func TestNodeAllocatorMonotonic(t *testing.T) {
	ids := newNodeAllocator()
	a := ids.Next()
	b := ids.Next()
	assert.Greater(t, b, a)
	assert.Greater(t, a, int32(1000))
}
