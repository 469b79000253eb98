// Package pattern holds the procedural generators. Every generator is a pure
// function of its config and an explicit rand source: the same seed always
// yields the same events, and no generator touches the network.
package pattern

import (
	"time"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// Pattern is an ordered, finite event sequence bounded by Total. Events are
// sorted by Start ascending and every event ends at or before Total.
type Pattern struct {
	Events []music.Event
	Total  time.Duration
}

// BeatDuration converts beats-per-minute to the wall-clock length of one
// beat. All generators share this conversion.
func BeatDuration(bpm float64) time.Duration {
	return time.Duration(float64(time.Minute) / bpm)
}

// Seconds converts a fractional second count to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func validateTempo(bpm float64) error {
	if bpm <= 0 {
		return music.Invalidf("tempo", "must be greater than zero, got %v", bpm)
	}
	return nil
}
