package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLFOSine(t *testing.T) {
	curve, err := LFO(LFOConfig{
		Target:   "frequency",
		Rate:     1,
		Depth:    0.5,
		Waveform: "sine",
		Duration: 2,
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, "freq", curve.Param)
	assert.Equal(t, 440.0, curve.Base)
	assert.Equal(t, 2*time.Second, curve.Total)
	require.NotEmpty(t, curve.Points)

	// Depth 0.5 sweeps 440 +/- 25%.
	for _, pt := range curve.Points {
		assert.GreaterOrEqual(t, pt.Value, 330.0-0.001)
		assert.LessOrEqual(t, pt.Value, 550.0+0.001)
		assert.GreaterOrEqual(t, pt.Offset, time.Duration(0))
		assert.Less(t, pt.Offset, curve.Total)
	}
}

func TestLFOSquareTakesOnlyExtremes(t *testing.T) {
	curve, err := LFO(LFOConfig{
		Target:   "amplitude",
		Rate:     2,
		Depth:    1,
		Waveform: "square",
		Duration: 1,
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, pt := range curve.Points {
		isLow := pt.Value < 0.001
		isHigh := pt.Value > 0.499
		assert.True(t, isLow || isHigh, "square wave value %v is not an extreme", pt.Value)
	}
}

func TestLFOTargets(t *testing.T) {
	tests := []struct {
		target string
		param  string
	}{
		{target: "frequency", param: "freq"},
		{target: "amplitude", param: "amp"},
		{target: "filter", param: "cutoff"},
		{target: "pan", param: "pan"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			curve, err := LFO(LFOConfig{Target: tt.target, Rate: 0.5, Depth: 0.5, Waveform: "triangle", Duration: 4}, rand.New(rand.NewSource(2)))
			require.NoError(t, err)
			assert.Equal(t, tt.param, curve.Param)
		})
	}
}

func TestLFOStepCappedForSlowRates(t *testing.T) {
	// A 0.1 Hz cycle is 10s; a twentieth would be 500ms, but the step caps
	// at 50ms so slow sweeps still update smoothly.
	curve, err := LFO(LFOConfig{Target: "pan", Rate: 0.1, Depth: 1, Waveform: "sine", Duration: 10}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Greater(t, len(curve.Points), 2)
	assert.Equal(t, 50*time.Millisecond, curve.Points[1].Offset-curve.Points[0].Offset)
}

func TestLFORandomIsSampleAndHold(t *testing.T) {
	curve, err := LFO(LFOConfig{Target: "filter", Rate: 1, Depth: 1, Waveform: "random", Duration: 3}, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	// Values hold within a cycle: far fewer distinct values than points.
	distinct := make(map[float64]bool)
	for _, pt := range curve.Points {
		distinct[pt.Value] = true
	}
	assert.Less(t, len(distinct), len(curve.Points)/2)
}

func TestLFORejections(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		cfg  LFOConfig
	}{
		{name: "unknown target", cfg: LFOConfig{Target: "resonance", Rate: 1, Depth: 0.5, Waveform: "sine", Duration: 5}},
		{name: "unknown waveform", cfg: LFOConfig{Target: "frequency", Rate: 1, Depth: 0.5, Waveform: "saw", Duration: 5}},
		{name: "rate too low", cfg: LFOConfig{Target: "frequency", Rate: 0.001, Depth: 0.5, Waveform: "sine", Duration: 5}},
		{name: "rate too high", cfg: LFOConfig{Target: "frequency", Rate: 50, Depth: 0.5, Waveform: "sine", Duration: 5}},
		{name: "depth out of range", cfg: LFOConfig{Target: "frequency", Rate: 1, Depth: 1.5, Waveform: "sine", Duration: 5}},
		{name: "duration out of range", cfg: LFOConfig{Target: "frequency", Rate: 1, Depth: 0.5, Waveform: "sine", Duration: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LFO(tt.cfg, rng)
			assertValidationError(t, err)
		})
	}
}
