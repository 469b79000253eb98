package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayered(t *testing.T) {
	pat, err := Layered(LayeredConfig{BaseNote: "A3", Layers: 3, Detune: 0.1, Duration: 5})
	require.NoError(t, err)

	require.Len(t, pat.Events, 3)
	assert.Equal(t, 5*time.Second, pat.Total)
	assertBounded(t, pat)

	// All layers start together and last the full duration.
	for _, ev := range pat.Events {
		assert.Equal(t, time.Duration(0), ev.Start)
		assert.Equal(t, pat.Total, ev.Duration)
	}

	// Pitches spread below and above the base, center layer on it.
	assert.Less(t, pat.Events[0].Freq, pat.Events[1].Freq)
	assert.Less(t, pat.Events[1].Freq, pat.Events[2].Freq)
	assert.InDelta(t, 220.0, pat.Events[1].Freq, 0.01)

	// Center layer is the loudest.
	assert.Greater(t, pat.Events[1].Velocity, pat.Events[0].Velocity)
	assert.Greater(t, pat.Events[1].Velocity, pat.Events[2].Velocity)

	// Stack fans across the stereo field.
	assert.InDelta(t, -0.8, pat.Events[0].Pan, 0.001)
	assert.InDelta(t, 0.8, pat.Events[2].Pan, 0.001)
}

func TestLayeredSingleLayer(t *testing.T) {
	pat, err := Layered(LayeredConfig{BaseNote: "440", Layers: 1, Detune: 0.5, Duration: 2})
	require.NoError(t, err)

	require.Len(t, pat.Events, 1)
	assert.InDelta(t, 440.0, pat.Events[0].Freq, 0.001)
	assert.Zero(t, pat.Events[0].Pan)
}

func TestLayeredRejections(t *testing.T) {
	tests := []struct {
		name string
		cfg  LayeredConfig
	}{
		{name: "too many layers", cfg: LayeredConfig{BaseNote: "A3", Layers: 6, Detune: 0.1, Duration: 5}},
		{name: "zero layers", cfg: LayeredConfig{BaseNote: "A3", Layers: 0, Detune: 0.1, Duration: 5}},
		{name: "detune out of range", cfg: LayeredConfig{BaseNote: "A3", Layers: 3, Detune: 2, Duration: 5}},
		{name: "duration out of range", cfg: LayeredConfig{BaseNote: "A3", Layers: 3, Detune: 0.1, Duration: 60}},
		{name: "bad base note", cfg: LayeredConfig{BaseNote: "Z9", Layers: 3, Detune: 0.1, Duration: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Layered(tt.cfg)
			assertValidationError(t, err)
		})
	}
}

func TestGranular(t *testing.T) {
	pat, err := Granular(GranularConfig{
		SourceNote:  "C4",
		Density:     0.5,
		GrainSize:   0.1,
		PitchSpread: 0.2,
		Duration:    4,
	}, rand.New(rand.NewSource(17)))
	require.NoError(t, err)

	assert.Equal(t, 4*time.Second, pat.Total)
	assertBounded(t, pat)

	// Density 0.5 yields ten grains per second.
	assert.Equal(t, 40, len(pat.Events))

	base := 261.6256
	for _, ev := range pat.Events {
		assert.InDelta(t, base, ev.Freq, base*0.2+0.01)
		assert.GreaterOrEqual(t, ev.Pan, -0.8)
		assert.LessOrEqual(t, ev.Pan, 0.8)
	}
}

func TestGranularZeroSpreadKeepsPitch(t *testing.T) {
	pat, err := Granular(GranularConfig{
		SourceNote:  "440",
		Density:     0.5,
		GrainSize:   0.05,
		PitchSpread: 0,
		Duration:    2,
	}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for _, ev := range pat.Events {
		assert.InDelta(t, 440.0, ev.Freq, 0.001)
		assert.InDelta(t, 0.2, ev.Velocity, 0.001)
	}
}

func TestGranularRejections(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		cfg  GranularConfig
	}{
		{name: "density too low", cfg: GranularConfig{SourceNote: "C4", Density: 0.01, GrainSize: 0.1, Duration: 4}},
		{name: "grain size too large", cfg: GranularConfig{SourceNote: "C4", Density: 0.5, GrainSize: 1, Duration: 4}},
		{name: "pitch spread out of range", cfg: GranularConfig{SourceNote: "C4", Density: 0.5, GrainSize: 0.1, PitchSpread: 2, Duration: 4}},
		{name: "duration out of range", cfg: GranularConfig{SourceNote: "C4", Density: 0.5, GrainSize: 0.1, Duration: 0.5}},
		{name: "bad source note", cfg: GranularConfig{SourceNote: "Q2", Density: 0.5, GrainSize: 0.1, Duration: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Granular(tt.cfg, rng)
			assertValidationError(t, err)
		})
	}
}
