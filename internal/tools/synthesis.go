package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/music"
	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

// EffectsInput is the optional effect-send block accepted by the synthesis
// tools, each level in [0,1].
type EffectsInput struct {
	Reverb     float64 `json:"reverb,omitempty" jsonschema:"reverb send level 0-1"`
	Delay      float64 `json:"delay,omitempty" jsonschema:"delay send level 0-1"`
	Distortion float64 `json:"distortion,omitempty" jsonschema:"distortion level 0-1"`
	Filter     float64 `json:"filter,omitempty" jsonschema:"filter amount 0-1"`
}

func (e EffectsInput) toEffects() sc.Effects {
	return sc.Effects{
		Reverb:     e.Reverb,
		Delay:      e.Delay,
		Distortion: e.Distortion,
		Filter:     e.Filter,
	}
}

// PlaySynthInput are the parameters of the play_synth tool.
type PlaySynthInput struct {
	SynthType string        `json:"synth_type,omitempty" jsonschema:"synth type: sine, saw, square, noise, fm or pad (default sine)"`
	Note      string        `json:"note,omitempty" jsonschema:"note name like C4 or G#3, or a frequency in Hz (default A4)"`
	Duration  float64       `json:"duration,omitempty" jsonschema:"duration in seconds, 0.1-30 (default 2)"`
	Volume    float64       `json:"volume,omitempty" jsonschema:"amplitude 0-1 (default 0.5)"`
	Effects   *EffectsInput `json:"effects,omitempty" jsonschema:"optional effect send levels"`
}

func (d *Dispatcher) PlaySynth(ctx context.Context, req *mcp.CallToolRequest, in PlaySynthInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "play_synth")
	duration := defaultFloat(in.Duration, 2)
	if duration < 0.1 || duration > 30 {
		return c.finish("", music.Invalidf("duration", "must be between 0.1 and 30 seconds, got %v", duration))
	}
	volume := defaultFloat(in.Volume, 0.5)
	if volume < 0 || volume > 1 {
		return c.finish("", music.Invalidf("volume", "must be between 0.0 and 1.0, got %v", volume))
	}

	var effects sc.Effects
	if in.Effects != nil {
		effects = in.Effects.toEffects()
	}
	synth, err := sc.LookupSynth(in.SynthType, effects)
	if err != nil {
		return c.finish("", err)
	}

	freq, err := music.NoteNameToFreq(defaultString(in.Note, "A4"))
	if err != nil {
		return c.finish("", music.Invalidf("note", "%v", err))
	}

	if err := d.player.PlayNote(ctx, synth, freq, volume, pattern.Seconds(duration)); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Played %s synth at %.1fHz for %v seconds", synth.Type, freq, duration)
	return c.finish(msg, nil)
}

// LFOInput are the parameters of the create_lfo_modulation tool.
type LFOInput struct {
	TargetParam string  `json:"target_param,omitempty" jsonschema:"parameter to modulate: frequency, amplitude, filter or pan (default frequency)"`
	Rate        float64 `json:"rate,omitempty" jsonschema:"LFO speed in Hz, 0.01-10 (default 0.5)"`
	Depth       float64 `json:"depth,omitempty" jsonschema:"modulation depth 0-1 (default 0.5)"`
	Waveform    string  `json:"waveform,omitempty" jsonschema:"LFO waveform: sine, triangle, square or random (default sine)"`
	Duration    float64 `json:"duration,omitempty" jsonschema:"duration in seconds, 1-60 (default 10)"`
	Seed        int64   `json:"seed,omitempty" jsonschema:"random seed for the random waveform (default clock-derived)"`
}

func (d *Dispatcher) CreateLFOModulation(ctx context.Context, req *mcp.CallToolRequest, in LFOInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_lfo_modulation")
	cfg := pattern.LFOConfig{
		Target:   defaultString(in.TargetParam, "frequency"),
		Rate:     defaultFloat(in.Rate, 0.5),
		Depth:    defaultFloat(in.Depth, 0.5),
		Waveform: defaultString(in.Waveform, "sine"),
		Duration: defaultFloat(in.Duration, 10),
	}

	curve, err := pattern.LFO(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Modulate(ctx, sc.DefaultSynth, curve); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Applied %s LFO modulation on %s at %vHz for %v seconds", cfg.Waveform, cfg.Target, cfg.Rate, cfg.Duration)
	return c.finish(msg, nil)
}

// LayeredSynthInput are the parameters of the create_layered_synth tool.
type LayeredSynthInput struct {
	BaseNote  string        `json:"base_note,omitempty" jsonschema:"root note for the stack, e.g. C3 (default C3)"`
	NumLayers int           `json:"num_layers,omitempty" jsonschema:"number of oscillator layers, 1-5 (default 3)"`
	Detune    float64       `json:"detune,omitempty" jsonschema:"detune spread between layers 0-1 (default 0.1)"`
	Effects   *EffectsInput `json:"effects,omitempty" jsonschema:"optional effect send levels"`
	Duration  float64       `json:"duration,omitempty" jsonschema:"duration in seconds, 1-30 (default 5)"`
}

func (d *Dispatcher) CreateLayeredSynth(ctx context.Context, req *mcp.CallToolRequest, in LayeredSynthInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_layered_synth")
	var effects sc.Effects
	if in.Effects != nil {
		effects = in.Effects.toEffects()
	}
	synth, err := sc.LookupSynth("pad", effects)
	if err != nil {
		return c.finish("", err)
	}

	cfg := pattern.LayeredConfig{
		BaseNote: defaultString(in.BaseNote, "C3"),
		Layers:   defaultInt(in.NumLayers, 3),
		Detune:   defaultFloat(in.Detune, 0.1),
		Duration: defaultFloat(in.Duration, 5),
	}
	pat, err := pattern.Layered(cfg)
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, synth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Created a %d-layer synth at %s for %v seconds", cfg.Layers, cfg.BaseNote, cfg.Duration)
	return c.finish(msg, nil)
}

// GranularInput are the parameters of the create_granular_texture tool.
type GranularInput struct {
	SourceNote  string  `json:"source_note,omitempty" jsonschema:"base note for the grains, e.g. A4 (default A4)"`
	Density     float64 `json:"density,omitempty" jsonschema:"grain density 0.1-1 (default 0.5)"`
	GrainSize   float64 `json:"grain_size,omitempty" jsonschema:"grain length in seconds, 0.01-0.5 (default 0.1)"`
	PitchSpread float64 `json:"pitch_spread,omitempty" jsonschema:"pitch variation between grains 0-1 (default 0.5)"`
	Duration    float64 `json:"duration,omitempty" jsonschema:"duration in seconds, 1-30 (default 10)"`
	Seed        int64   `json:"seed,omitempty" jsonschema:"random seed for reproducible grains (default clock-derived)"`
}

func (d *Dispatcher) CreateGranularTexture(ctx context.Context, req *mcp.CallToolRequest, in GranularInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_granular_texture")
	cfg := pattern.GranularConfig{
		SourceNote:  defaultString(in.SourceNote, "A4"),
		Density:     defaultFloat(in.Density, 0.5),
		GrainSize:   defaultFloat(in.GrainSize, 0.1),
		PitchSpread: defaultFloat(in.PitchSpread, 0.5),
		Duration:    defaultFloat(in.Duration, 10),
	}

	pat, err := pattern.Granular(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, sc.DefaultSynth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Created a granular texture at %s with density %v for %v seconds", cfg.SourceNote, cfg.Density, cfg.Duration)
	return c.finish(msg, nil)
}
