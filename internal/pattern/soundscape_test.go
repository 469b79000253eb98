package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundscape(t *testing.T) {
	pat, err := Soundscape(SoundscapeConfig{
		Duration:   30,
		Density:    0.5,
		PitchRange: "medium",
		Mood:       "calm",
	}, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, pat.Total)
	assertBounded(t, pat)

	// Drone underpins the whole scape.
	require.NotEmpty(t, pat.Events)
	drone := pat.Events[0]
	assert.Equal(t, time.Duration(0), drone.Start)
	assert.Equal(t, pat.Total, drone.Duration)

	// Ordered by start offset.
	for i := 1; i < len(pat.Events); i++ {
		assert.GreaterOrEqual(t, pat.Events[i].Start, pat.Events[i-1].Start)
	}
}

func TestSoundscapeEventCountScalesWithDensity(t *testing.T) {
	sparse, err := Soundscape(SoundscapeConfig{Duration: 60, Density: 0.1, PitchRange: "full", Mood: "dark"}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	dense, err := Soundscape(SoundscapeConfig{Duration: 60, Density: 0.6, PitchRange: "full", Mood: "dark"}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.Greater(t, len(dense.Events), len(sparse.Events))
}

func TestSoundscapeMoods(t *testing.T) {
	for _, mood := range []string{"calm", "dark", "bright", "mysterious", "chaotic"} {
		t.Run(mood, func(t *testing.T) {
			pat, err := Soundscape(SoundscapeConfig{Duration: 20, Density: 0.5, PitchRange: "full", Mood: mood}, rand.New(rand.NewSource(4)))
			require.NoError(t, err)
			assertBounded(t, pat)
		})
	}
}

func TestSoundscapeRejections(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		cfg  SoundscapeConfig
	}{
		{name: "unknown mood", cfg: SoundscapeConfig{Duration: 30, Density: 0.5, PitchRange: "full", Mood: "gloomy"}},
		{name: "unknown pitch range", cfg: SoundscapeConfig{Duration: 30, Density: 0.5, PitchRange: "subsonic", Mood: "calm"}},
		{name: "duration too short", cfg: SoundscapeConfig{Duration: 5, Density: 0.5, PitchRange: "full", Mood: "calm"}},
		{name: "duration too long", cfg: SoundscapeConfig{Duration: 200, Density: 0.5, PitchRange: "full", Mood: "calm"}},
		{name: "density out of range", cfg: SoundscapeConfig{Duration: 30, Density: 1.5, PitchRange: "full", Mood: "calm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Soundscape(tt.cfg, rng)
			assertValidationError(t, err)
		})
	}
}
