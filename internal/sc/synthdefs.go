package sc

import (
	"sort"

	"github.com/Tok/SuperColliderMCP/internal/music"
)

// Synth selects a server-side synth definition plus its effect sends. The
// per-type parameter ordering below is the contract the external synth
// definitions expect; it is data, not behavior, and changing it requires a
// matching change on the SuperCollider side.
type Synth struct {
	Type    string
	Effects Effects
}

// Effects are the send levels understood by the synth definitions, each in
// [0,1]. Zero levels are omitted from the wire message.
type Effects struct {
	Reverb     float64
	Delay      float64
	Distortion float64
	Filter     float64
}

// Validate rejects out-of-range effect levels before anything is sent.
func (e Effects) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"reverb", e.Reverb},
		{"delay", e.Delay},
		{"distortion", e.Distortion},
		{"filter", e.Filter},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 1 {
			return music.Invalidf("effects", "%s must be between 0.0 and 1.0, got %v", c.name, c.value)
		}
	}
	return nil
}

// kv is one control-name/value pair in a synth's fixed parameter tail.
type kv struct {
	key   string
	value float32
}

// synthDefs maps a synth type name to the extra control parameters its
// definition takes after freq/amp/pan. All types currently trigger the
// server's "default" definition with different parameter sets.
var synthDefs = map[string]struct {
	defName string
	extras  []kv
}{
	"sine":   {defName: "default"},
	"saw":    {defName: "default", extras: []kv{{"harmonics", 10}}},
	"square": {defName: "default", extras: []kv{{"harmonics", 20}}},
	"noise":  {defName: "default"},
	"fm":     {defName: "default", extras: []kv{{"mod_ratio", 2.0}, {"mod_depth", 0.5}}},
	"pad":    {defName: "default", extras: []kv{{"attack", 0.5}, {"release", 1.0}}},
}

// DefaultSynth is the plain sine voice used by pattern playback.
var DefaultSynth = Synth{Type: "sine"}

// SynthNames returns the supported synth type names, sorted.
func SynthNames() []string {
	names := make([]string, 0, len(synthDefs))
	for name := range synthDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSynth validates a synth type name, defaulting the empty string to
// the sine voice.
func LookupSynth(name string, effects Effects) (Synth, error) {
	if name == "" {
		name = "sine"
	}
	if _, ok := synthDefs[name]; !ok {
		return Synth{}, music.Invalidf("synth_type", "unknown synth type %q, supported: %v", name, SynthNames())
	}
	if err := effects.Validate(); err != nil {
		return Synth{}, err
	}
	return Synth{Type: name, Effects: effects}, nil
}
