package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tok/SuperColliderMCP/internal/config"
	"github.com/Tok/SuperColliderMCP/internal/pattern"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

func newScaleCommand(cfg *config.Config) *cobra.Command {
	var (
		scale     string
		tempo     float64
		direction string
	)

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Play a scale run up, down or both",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			pat, err := pattern.ScaleRun(scale, tempo, direction, rng)
			if err != nil {
				return err
			}

			client, player, err := dialPlayer(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := player.Play(cmd.Context(), pat, sc.DefaultSynth); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Played the %s scale %s at %v BPM\n", scale, direction, tempo)
			return nil
		},
	}

	cmd.Flags().StringVar(&scale, "scale", "major", "scale name: major, minor, pentatonic or blues")
	cmd.Flags().Float64Var(&tempo, "tempo", 120, "beats per minute")
	cmd.Flags().StringVar(&direction, "direction", "both", "run direction: up, down or both")
	return cmd
}
