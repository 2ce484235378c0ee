package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var targetsJSON bool

var targetsCmd = &cobra.Command{
	Use:   "targets <location>",
	Short: "Predict hauler traffic at a location",
	Long: `Predict hauler traffic through a location: which commodities move
through it, in which direction, and what hull likely carries them. Also
lists registry items sourced at the location as cargo guesses.

The location matches terminal names by substring, so "Everus" finds
"Everus Harbor".

Examples:
  corsair targets Everus
  corsair targets "ARC-L1" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}
		location := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		predictions, err := services.Analyzer.TargetsAt(ctx, location)
		if err != nil {
			return fmt.Errorf("predict targets: %w", err)
		}
		cargo := services.Analyzer.LikelyCargoAt(location)

		if targetsJSON {
			return printJSON(struct {
				Location    string      `json:"location"`
				Predictions interface{} `json:"predictions"`
				LikelyCargo interface{} `json:"likely_cargo"`
			}{location, predictions, cargo})
		}

		out := cmd.OutOrStdout()
		if len(predictions) == 0 {
			fmt.Fprintf(out, "no tracked trade traffic at %q\n", location)
		} else {
			fmt.Fprintf(out, "traffic at %q:\n", location)
			for _, p := range predictions {
				fmt.Fprintf(out, "  %-9s %-20s via %-18s ~%s aUEC (to %s)\n",
					p.Direction, p.Commodity, p.LikelyShip.Name, formatAUEC(p.EstimatedCargoValue), p.Destination)
			}
		}
		if len(cargo) > 0 {
			fmt.Fprintf(out, "likely cargo from local sources:\n")
			for _, c := range cargo {
				fmt.Fprintf(out, "  %-30s %-16s %s %d/5\n", c.Name, c.Category, c.Method, c.Reliability)
			}
		}
		return nil
	},
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "emit JSON instead of text")
	rootCmd.AddCommand(targetsCmd)
}

func formatAUEC(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.0fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
