package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupScale(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFound bool
		intervals []int
	}{
		{name: "major", input: "major", wantFound: true, intervals: []int{0, 2, 4, 5, 7, 9, 11, 12}},
		{name: "minor", input: "minor", wantFound: true, intervals: []int{0, 2, 3, 5, 7, 8, 10, 12}},
		{name: "pentatonic", input: "pentatonic", wantFound: true, intervals: []int{0, 2, 4, 7, 9, 12}},
		{name: "blues", input: "blues", wantFound: true, intervals: []int{0, 3, 5, 6, 7, 10, 12}},
		{name: "case insensitive", input: "Major", wantFound: true, intervals: []int{0, 2, 4, 5, 7, 9, 11, 12}},
		{name: "unknown", input: "phrygian", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, ok := LookupScale(tt.input)
			require.Equal(t, tt.wantFound, ok)
			if ok {
				assert.Equal(t, tt.intervals, scale.Intervals)
			}
		})
	}
}

func TestScaleNames(t *testing.T) {
	assert.Equal(t, []string{"blues", "major", "minor", "pentatonic"}, ScaleNames())
}
