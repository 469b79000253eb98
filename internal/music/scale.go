package music

import (
	"sort"
	"strings"
)

// Scale maps a named scale to its semitone offsets from the root. The
// interval tables are fixed at startup and never mutated.
type Scale struct {
	Name      string
	Intervals []int
}

var scales = map[string]Scale{
	"major":      {Name: "major", Intervals: []int{0, 2, 4, 5, 7, 9, 11, 12}},
	"minor":      {Name: "minor", Intervals: []int{0, 2, 3, 5, 7, 8, 10, 12}},
	"pentatonic": {Name: "pentatonic", Intervals: []int{0, 2, 4, 7, 9, 12}},
	"blues":      {Name: "blues", Intervals: []int{0, 3, 5, 6, 7, 10, 12}},
}

// LookupScale returns the scale for a case-insensitive name.
func LookupScale(name string) (Scale, bool) {
	s, ok := scales[strings.ToLower(name)]
	return s, ok
}

// ScaleNames returns the supported scale names, sorted.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
