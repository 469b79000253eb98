package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

// SoundscapeInput are the parameters of the create_ambient_soundscape tool.
type SoundscapeInput struct {
	Duration   float64 `json:"duration,omitempty" jsonschema:"length in seconds, 10-120 (default 30)"`
	Density    float64 `json:"density,omitempty" jsonschema:"density of sound events 0-1 (default 0.5)"`
	PitchRange string  `json:"pitch_range,omitempty" jsonschema:"overall pitch range: low, medium, high or full (default medium)"`
	Mood       string  `json:"mood,omitempty" jsonschema:"emotional quality: calm, dark, bright, mysterious or chaotic (default calm)"`
	Seed       int64   `json:"seed,omitempty" jsonschema:"random seed for reproducible output (default clock-derived)"`
}

func (d *Dispatcher) CreateAmbientSoundscape(ctx context.Context, req *mcp.CallToolRequest, in SoundscapeInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_ambient_soundscape")
	cfg := pattern.SoundscapeConfig{
		Duration:   defaultFloat(in.Duration, 30),
		Density:    defaultFloat(in.Density, 0.5),
		PitchRange: defaultString(in.PitchRange, "medium"),
		Mood:       defaultString(in.Mood, "calm"),
	}

	pat, err := pattern.Soundscape(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, sc.Synth{Type: "pad"}); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Created a %s ambient soundscape lasting %v seconds with %d sound events",
		cfg.Mood, cfg.Duration, len(pat.Events))
	return c.finish(msg, nil)
}

// GenerativeRhythmInput are the parameters of the create_generative_rhythm tool.
type GenerativeRhythmInput struct {
	Style     string  `json:"style,omitempty" jsonschema:"rhythm style: minimal, techno, glitch, jazz or ambient (default minimal)"`
	Duration  float64 `json:"duration,omitempty" jsonschema:"length in seconds, 5-120 (default 20)"`
	Tempo     float64 `json:"tempo,omitempty" jsonschema:"beats per minute, 20-300 (default 120)"`
	Intensity float64 `json:"intensity,omitempty" jsonschema:"overall intensity/complexity 0-1 (default 0.5)"`
	Seed      int64   `json:"seed,omitempty" jsonschema:"random seed for reproducible output (default clock-derived)"`
}

func (d *Dispatcher) CreateGenerativeRhythm(ctx context.Context, req *mcp.CallToolRequest, in GenerativeRhythmInput) (*mcp.CallToolResult, any, error) {
	c := d.begin(ctx, "create_generative_rhythm")
	cfg := pattern.RhythmConfig{
		Style:     defaultString(in.Style, "minimal"),
		Duration:  defaultFloat(in.Duration, 20),
		Tempo:     defaultFloat(in.Tempo, 120),
		Intensity: defaultFloat(in.Intensity, 0.5),
	}

	if err := validateTempoRange(cfg.Tempo); err != nil {
		return c.finish("", err)
	}
	pat, err := pattern.GenerativeRhythm(cfg, d.rng(in.Seed))
	if err != nil {
		return c.finish("", err)
	}
	if err := d.player.Play(ctx, pat, sc.DefaultSynth); err != nil {
		return c.finish("", err)
	}

	msg := fmt.Sprintf("Created a generative %s rhythm at %v BPM for %v seconds with intensity %v",
		cfg.Style, cfg.Tempo, cfg.Duration, cfg.Intensity)
	return c.finish(msg, nil)
}
