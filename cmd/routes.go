package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	routesJSON  bool
	routesLimit int
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Show hot trade routes worth camping",
	Long: `Show the most valuable trade routes right now, ranked by the profit a
full load of the likely hull would clear. Data comes from the UEX trade
API and is cached per the configured TTL.

Examples:
  corsair routes
  corsair routes --limit 5 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		routes, err := services.Analyzer.HotRoutes(ctx, routesLimit)
		if err != nil {
			return fmt.Errorf("fetch hot routes: %w", err)
		}

		if routesJSON {
			return printJSON(routes)
		}

		out := cmd.OutOrStdout()
		if len(routes) == 0 {
			fmt.Fprintln(out, "no profitable routes found")
			return nil
		}
		fmt.Fprintf(out, "%-14s %-24s %-24s %10s %-14s %10s %6s\n",
			"COMMODITY", "ORIGIN", "DESTINATION", "PROFIT/SCU", "LIKELY SHIP", "HAUL", "RISK")
		for _, r := range routes {
			fmt.Fprintf(out, "%-14s %-24s %-24s %10.0f %-14s %10s %5.0f%%\n",
				r.Commodity, r.Origin, r.Destination, r.ProfitPerSCU,
				r.LikelyShip.Name, formatAUEC(r.EstimatedHaulValue), r.RiskScore)
		}
		return nil
	},
}

func init() {
	routesCmd.Flags().IntVar(&routesLimit, "limit", 10, "maximum routes to show")
	routesCmd.Flags().BoolVar(&routesJSON, "json", false, "emit JSON instead of text")
	rootCmd.AddCommand(routesCmd)
}
