// Package cli defines the command-line surface. `serve` runs the MCP
// server; the remaining commands drive the synth directly for quick
// checks without an MCP host in the loop.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Tok/SuperColliderMCP/internal/config"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "supercollider-mcp",
		Short:         "MCP bridge that turns musical tool calls into SuperCollider OSC messages",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(cfg, version),
		newNoteCommand(cfg),
		newScaleCommand(cfg),
		newMelodyCommand(cfg),
		newDrumsCommand(cfg),
	)
	return root
}

// dialPlayer opens the UDP transport to scsynth and wraps it in a player.
// The caller must Close the returned client.
func dialPlayer(cfg *config.Config) (*sc.Client, *sc.Player, error) {
	client, err := sc.Dial(cfg.SCHost, cfg.SCPort)
	if err != nil {
		return nil, nil, err
	}
	return client, sc.NewPlayer(client), nil
}
