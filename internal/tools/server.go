package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName identifies the bridge to MCP clients.
const ServerName = "Super-Collider-OSC-MCP"

// NewServer builds the MCP server with every capability registered. The
// version string is the build's release version.
func NewServer(d *Dispatcher, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "play_example_osc",
		Description: "Play a simple example sound: a sine wave with random frequency modulation.",
	}, d.PlayExampleOSC)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "play_melody",
		Description: "Play a procedurally generated melody that walks a musical scale.",
	}, d.PlayMelody)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_drum_pattern",
		Description: "Play a drum pattern in a named style over kick, snare and hihat voices.",
	}, d.CreateDrumPattern)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "play_synth",
		Description: "Play a single synthesizer note with a selectable waveform and optional effects.",
	}, d.PlaySynth)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_sequence",
		Description: "Play a musical sequence written as a dash-delimited pattern string.",
	}, d.CreateSequence)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_ambient_soundscape",
		Description: "Create an ambient soundscape with a drone and layered textural events.",
	}, d.CreateAmbientSoundscape)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_generative_rhythm",
		Description: "Create a generative rhythm that evolves over time in a named style.",
	}, d.CreateGenerativeRhythm)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_lfo_modulation",
		Description: "Modulate a synth parameter with a low-frequency oscillator.",
	}, d.CreateLFOModulation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_layered_synth",
		Description: "Create a rich synth sound from multiple detuned oscillator layers.",
	}, d.CreateLayeredSynth)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_granular_texture",
		Description: "Create a granular synthesis texture from many small sonic grains.",
	}, d.CreateGranularTexture)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_chord_progression",
		Description: "Play a chord progression with a selectable voicing style.",
	}, d.CreateChordProgression)

	return server
}
