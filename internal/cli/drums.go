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

func newDrumsCommand(cfg *config.Config) *cobra.Command {
	var (
		style string
		beats int
		tempo float64
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "drums",
		Short: "Play a drum pattern",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			pat, err := pattern.Drums(pattern.DrumConfig{
				Pattern: style,
				Beats:   beats,
				Tempo:   tempo,
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
			fmt.Fprintf(cmd.OutOrStdout(), "Played %d beats of %s at %v BPM\n", beats, style, tempo)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "pattern", "four_on_floor", "pattern style: four_on_floor, breakbeat, shuffle or random")
	cmd.Flags().IntVar(&beats, "beats", 16, "number of beats to play")
	cmd.Flags().Float64Var(&tempo, "tempo", 120, "beats per minute")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	return cmd
}
