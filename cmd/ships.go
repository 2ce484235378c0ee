package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shipsJSON bool

var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List the cargo ship reference fleet",
	Long: `List the cargo hulls used to estimate what is flying a route, with the
stats that matter before committing to an interdiction: cargo capacity,
crew size, and threat level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}
		fleet := services.Fleet.All()

		if shipsJSON {
			return printJSON(fleet)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s %-16s %8s %6s %8s\n", "SHIP", "MANUFACTURER", "CARGO", "CREW", "THREAT")
		for _, s := range fleet {
			fmt.Fprintf(out, "%-18s %-16s %7d  %5d %7d\n",
				s.Name, s.Manufacturer, s.CargoSCU, s.CrewSize, s.ThreatLevel)
		}
		return nil
	},
}

func init() {
	shipsCmd.Flags().BoolVar(&shipsJSON, "json", false, "emit JSON instead of text")
	rootCmd.AddCommand(shipsCmd)
}
