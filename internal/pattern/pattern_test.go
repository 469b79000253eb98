package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

func TestBeatDuration(t *testing.T) {
	tests := []struct {
		name string
		bpm  float64
		want time.Duration
	}{
		{name: "60 BPM is one second", bpm: 60, want: time.Second},
		{name: "120 BPM is half a second", bpm: 120, want: 500 * time.Millisecond},
		{name: "100 BPM is 600ms", bpm: 100, want: 600 * time.Millisecond},
		{name: "240 BPM is 250ms", bpm: 240, want: 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BeatDuration(tt.bpm))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, Seconds(1.5))
	assert.Equal(t, time.Duration(0), Seconds(0))
}

// assertBounded checks the invariant every generator must hold: events start
// at or after zero and end at or before the pattern total.
func assertBounded(t *testing.T, pat Pattern) {
	t.Helper()
	for i, ev := range pat.Events {
		assert.GreaterOrEqual(t, ev.Start, time.Duration(0), "event %d starts before zero", i)
		assert.LessOrEqual(t, ev.End(), pat.Total, "event %d rings past the total", i)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var verr *music.ValidationError
	assert.ErrorAs(t, err, &verr)
}
