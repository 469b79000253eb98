package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

const kickFreq = 60.0

func kickStarts(pat Pattern) []time.Duration {
	var starts []time.Duration
	for _, ev := range pat.Events {
		if ev.Freq == kickFreq {
			starts = append(starts, ev.Start)
		}
	}
	return starts
}

func TestDrumsFourOnFloor(t *testing.T) {
	pat, err := Drums(DrumConfig{Pattern: "four_on_floor", Beats: 16, Tempo: 120}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	beat := BeatDuration(120)
	assert.Equal(t, 16*beat, pat.Total)

	// A kick lands on every 4th slot and nowhere else.
	want := []time.Duration{0, 4 * beat, 8 * beat, 12 * beat}
	assert.Equal(t, want, kickStarts(pat))

	for _, ev := range pat.Events {
		assert.GreaterOrEqual(t, ev.Start, time.Duration(0))
		assert.LessOrEqual(t, ev.End(), pat.Total)
	}
}

func TestDrumsGridLoopsPastSixteenBeats(t *testing.T) {
	pat, err := Drums(DrumConfig{Pattern: "four_on_floor", Beats: 20, Tempo: 120}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	beat := BeatDuration(120)
	starts := kickStarts(pat)
	require.Len(t, starts, 5)
	assert.Equal(t, 16*beat, starts[4])
}

func TestDrumsTempoDoublingHalvesSpacing(t *testing.T) {
	slow, err := Drums(DrumConfig{Pattern: "shuffle", Beats: 8, Tempo: 60}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	fast, err := Drums(DrumConfig{Pattern: "shuffle", Beats: 8, Tempo: 120}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	slowKicks := kickStarts(slow)
	fastKicks := kickStarts(fast)
	require.Greater(t, len(slowKicks), 1)
	assert.Equal(t, slowKicks[1]-slowKicks[0], 2*(fastKicks[1]-fastKicks[0]))
}

func TestDrumsRandomStyle(t *testing.T) {
	pat, err := Drums(DrumConfig{Pattern: "random", Beats: 16, Tempo: 120}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	var sawKick, sawSnare bool
	for _, ev := range pat.Events {
		switch ev.Freq {
		case 60:
			sawKick = true
		case 300:
			sawSnare = true
		}
		assert.LessOrEqual(t, ev.End(), pat.Total)
	}
	assert.True(t, sawKick)
	assert.True(t, sawSnare)
}

func TestDrumsRejections(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("unknown pattern", func(t *testing.T) {
		pat, err := Drums(DrumConfig{Pattern: "bossa_nova", Beats: 16, Tempo: 120}, rng)
		var verr *music.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, pat.Events)
	})

	t.Run("zero tempo", func(t *testing.T) {
		_, err := Drums(DrumConfig{Pattern: "shuffle", Beats: 16, Tempo: 0}, rng)
		var verr *music.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("negative beats", func(t *testing.T) {
		_, err := Drums(DrumConfig{Pattern: "shuffle", Beats: -4, Tempo: 120}, rng)
		var verr *music.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestDrumsZeroBeats(t *testing.T) {
	pat, err := Drums(DrumConfig{Pattern: "breakbeat", Beats: 0, Tempo: 120}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Empty(t, pat.Events)
	assert.Zero(t, pat.Total)
}

func TestDrumPatternNames(t *testing.T) {
	assert.Equal(t, []string{"breakbeat", "four_on_floor", "random", "shuffle"}, DrumPatternNames())
}
