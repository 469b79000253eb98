package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/music"
	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

// Tempo bounds shared by the rhythm-driven tools.
const (
	minTempo = 20
	maxTempo = 300
)

func validateTempoRange(bpm float64) error {
	if bpm <= 0 {
		return music.Invalidf("tempo", "must be greater than zero, got %v", bpm)
	}
	if bpm < minTempo || bpm > maxTempo {
		return music.Invalidf("tempo", "must be between %d and %d BPM, got %v", minTempo, maxTempo, bpm)
	}
	return nil
}

// MelodyInput are the parameters of the play_melody tool.
type MelodyInput struct {
	Scale     string  `json:"scale,omitempty" jsonschema:"scale to use: major, minor, pentatonic or blues (default major)"`
	Tempo     float64 `json:"tempo,omitempty" jsonschema:"beats per minute, 20-300 (default 120)"`
	Notes     int     `json:"notes,omitempty" jsonschema:"number of notes to generate (default 16)"`
	Direction string  `json:"direction,omitempty" jsonschema:"walk direction: up, down, updown or random (default random)"`
	Seed      int64   `json:"seed,omitempty" jsonschema:"random seed for reproducible output (default clock-derived)"`
}

func (d *Dispatcher) PlayMelody(ctx context.Context, req *mcp.CallToolRequest, in MelodyInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "play_melody")
	cfg := pattern.MelodyConfig{
		Scale:     defaultString(in.Scale, "major"),
		Tempo:     defaultFloat(in.Tempo, 120),
		Notes:     defaultInt(in.Notes, 16),
		Direction: defaultString(in.Direction, pattern.DirectionRandom),
	}

	if err := validateTempoRange(cfg.Tempo); err != nil {
		return c.finish("", err)
	}
	pat, err := pattern.Melody(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, sc.DefaultSynth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Played a %d-note %s melody at %v BPM", len(pat.Events), cfg.Scale, cfg.Tempo)
	return c.finish(msg, nil)
}

// DrumPatternInput are the parameters of the create_drum_pattern tool.
type DrumPatternInput struct {
	Pattern string  `json:"pattern_type,omitempty" jsonschema:"pattern style: four_on_floor, breakbeat, shuffle or random (default four_on_floor)"`
	Beats   int     `json:"beats,omitempty" jsonschema:"number of beats to play, the 16-step grid loops (default 16)"`
	Tempo   float64 `json:"tempo,omitempty" jsonschema:"beats per minute, 20-300 (default 120)"`
	Seed    int64   `json:"seed,omitempty" jsonschema:"random seed for the random style (default clock-derived)"`
}

func (d *Dispatcher) CreateDrumPattern(ctx context.Context, req *mcp.CallToolRequest, in DrumPatternInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_drum_pattern")
	cfg := pattern.DrumConfig{
		Pattern: defaultString(in.Pattern, "four_on_floor"),
		Beats:   defaultInt(in.Beats, 16),
		Tempo:   defaultFloat(in.Tempo, 120),
	}

	if err := validateTempoRange(cfg.Tempo); err != nil {
		return c.finish("", err)
	}
	pat, err := pattern.Drums(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, sc.DefaultSynth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Played a %s drum pattern with %d beats at %v BPM", cfg.Pattern, cfg.Beats, cfg.Tempo)
	return c.finish(msg, nil)
}

// SequenceInput are the parameters of the create_sequence tool.
type SequenceInput struct {
	Pattern string  `json:"pattern" jsonschema:"dash-delimited notes, e.g. C4-E4-G4-C5; _ shortens, + lengthens, . rests"`
	Synth   string  `json:"synth,omitempty" jsonschema:"synth type: sine, saw, square, noise, fm or pad (default sine)"`
	Tempo   float64 `json:"tempo,omitempty" jsonschema:"beats per minute, 20-300 (default 120)"`
	Repeats int     `json:"repeats,omitempty" jsonschema:"times to repeat the phrase, 1-8 (default 1)"`
}

func (d *Dispatcher) CreateSequence(ctx context.Context, req *mcp.CallToolRequest, in SequenceInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_sequence")
	repeats := defaultInt(in.Repeats, 1)
	if repeats < 1 || repeats > 8 {
		return c.finish("", music.Invalidf("repeats", "must be between 1 and 8, got %d", repeats))
	}
	tempo := defaultFloat(in.Tempo, 120)
	if err := validateTempoRange(tempo); err != nil {
		return c.finish("", err)
	}
	synth, err := sc.LookupSynth(in.Synth, sc.Effects{})
	if err != nil {
		return c.finish("", err)
	}

	pat, err := pattern.Sequence(pattern.SequenceConfig{
		Notes:   in.Pattern,
		Tempo:   tempo,
		Repeats: repeats,
	})
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, synth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Played a sequence of %d notes at %v BPM, repeated %d time(s)", len(pat.Events)/repeats, tempo, repeats)
	return c.finish(msg, nil)
}

// ChordProgressionInput are the parameters of the create_chord_progression tool.
type ChordProgressionInput struct {
	Progression   string  `json:"progression" jsonschema:"dash-delimited chord symbols, e.g. C-G-Am-F"`
	Style         string  `json:"style,omitempty" jsonschema:"voicing: pad, block, staccato, arpeggio or power (default pad)"`
	Tempo         float64 `json:"tempo,omitempty" jsonschema:"beats per minute, 20-300 (default 60)"`
	BeatsPerChord float64 `json:"duration_per_chord,omitempty" jsonschema:"beats each chord occupies, 1-8 (default 4)"`
}

func (d *Dispatcher) CreateChordProgression(ctx context.Context, req *mcp.CallToolRequest, in ChordProgressionInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_chord_progression")
	cfg := pattern.ProgressionConfig{
		Progression:   in.Progression,
		Style:         defaultString(in.Style, pattern.VoicingPad),
		Tempo:         defaultFloat(in.Tempo, 60),
		BeatsPerChord: defaultFloat(in.BeatsPerChord, 4),
	}

	if err := validateTempoRange(cfg.Tempo); err != nil {
		return c.finish("", err)
	}
	if cfg.BeatsPerChord < 1 || cfg.BeatsPerChord > 8 {
		return c.finish("", music.Invalidf("duration_per_chord", "must be between 1 and 8 beats, got %v", cfg.BeatsPerChord))
	}

	pat, err := pattern.Progression(cfg)
	if err != nil {
		return c.finish("", err)
	}
	synth := sc.DefaultSynth
	if cfg.Style == pattern.VoicingPad || cfg.Style == pattern.VoicingBlock {
		synth = sc.Synth{Type: "pad"}
	}
	if err := d.player.Play(ctx, pat, synth); err != nil {
		return c.finish("", err)
	}

	chords, _ := music.ParseProgression(cfg.Progression)
	msg := fmt.Sprintf("Played a %d-chord progression in %s style at %v BPM", len(chords), cfg.Style, cfg.Tempo)
	return c.finish(msg, nil)
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
