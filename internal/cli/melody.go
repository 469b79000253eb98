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

func newMelodyCommand(cfg *config.Config) *cobra.Command {
	var (
		scale     string
		tempo     float64
		notes     int
		direction string
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "melody",
		Short: "Generate and play a random melody",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			pat, err := pattern.Melody(pattern.MelodyConfig{
				Scale:     scale,
				Tempo:     tempo,
				Notes:     notes,
				Direction: direction,
			}, rand.New(rand.NewSource(seed)))
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
			fmt.Fprintf(cmd.OutOrStdout(), "Played a %d-note %s melody at %v BPM (seed %d)\n", len(pat.Events), scale, tempo, seed)
			return nil
		},
	}

	cmd.Flags().StringVar(&scale, "scale", "major", "scale name: major, minor, pentatonic or blues")
	cmd.Flags().Float64Var(&tempo, "tempo", 120, "beats per minute")
	cmd.Flags().IntVar(&notes, "notes", 16, "number of notes to generate")
	cmd.Flags().StringVar(&direction, "direction", "random", "walk direction: up, down, updown or random")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	return cmd
}
