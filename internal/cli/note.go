package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tok/SuperColliderMCP/internal/config"
	"github.com/Tok/SuperColliderMCP/internal/music"
	"github.com/Tok/SuperColliderMCP/internal/sc"
)

func newNoteCommand(cfg *config.Config) *cobra.Command {
	var (
		note     string
		synth    string
		duration float64
		amp      float64
	)

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Play a single note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if duration <= 0 {
				return music.Invalidf("duration", "must be positive, got %v", duration)
			}
			if amp < 0 || amp > 1 {
				return music.Invalidf("amp", "must be between 0.0 and 1.0, got %v", amp)
			}
			freq, err := music.NoteNameToFreq(note)
			if err != nil {
				return err
			}
			syn, err := sc.LookupSynth(synth, sc.Effects{})
			if err != nil {
				return err
			}

			client, player, err := dialPlayer(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			dur := time.Duration(duration * float64(time.Second))
			if err := player.PlayNote(cmd.Context(), syn, freq, amp, dur); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Played %s (%.2f Hz) for %.1fs\n", note, freq, duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "A4", "note name (e.g. C4, F#3) or frequency in Hz")
	cmd.Flags().StringVar(&synth, "synth", "sine", "synth type: sine, saw, square, noise, fm or pad")
	cmd.Flags().Float64Var(&duration, "duration", 1.0, "note length in seconds")
	cmd.Flags().Float64Var(&amp, "amp", 0.5, "amplitude, 0.0-1.0")
	return cmd
}
