package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corsair-sc/corsair/internal/domain/items"
)

var (
	itemsCategory string
	itemsLocation string
	itemsSystem   string
)

var itemsListCmd = &cobra.Command{
	Use:   "items:list",
	Short: "List registry items as JSON",
	Long: `List items from the registry as JSON.

Filters are mutually exclusive and use exact, case-sensitive matching.

Examples:
  corsair items:list
  corsair items:list --category creature_part
  corsair items:list --location "Wikelo Emporium"
  corsair items:list --system Stanton
  corsair items:list | jq '.[].id'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}
		registry := services.Items

		set := 0
		for _, flag := range []string{"category", "location", "system"} {
			if cmd.Flags().Changed(flag) {
				set++
			}
		}
		if set > 1 {
			return fmt.Errorf("--category, --location, and --system are mutually exclusive")
		}

		switch {
		case itemsCategory != "":
			cat := items.ItemCategory(itemsCategory)
			if !cat.Valid() {
				return fmt.Errorf("unknown category %q, valid: %v", itemsCategory, items.Categories())
			}
			return printJSON(deref(registry.ItemsInCategory(cat)))
		case itemsLocation != "":
			return printJSON(deref(registry.ItemsAtLocation(itemsLocation)))
		case itemsSystem != "":
			return printJSON(deref(registry.ItemsInSystem(itemsSystem)))
		default:
			return printJSON(registry.AllItems())
		}
	},
}

var itemsShowCmd = &cobra.Command{
	Use:   "items:show <id>",
	Short: "Show one registry item as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}

		item, ok := services.Items.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown item id %q", args[0])
		}
		return printJSON(item)
	},
}

func init() {
	itemsListCmd.Flags().StringVar(&itemsCategory, "category", "", "filter by category")
	itemsListCmd.Flags().StringVar(&itemsLocation, "location", "", "filter by source location name")
	itemsListCmd.Flags().StringVar(&itemsSystem, "system", "", "filter by star system")

	rootCmd.AddCommand(itemsListCmd)
	rootCmd.AddCommand(itemsShowCmd)
}

// deref flattens registry query results for JSON output, keeping [] instead
// of null for empty results.
func deref(found []*items.Item) []items.Item {
	out := make([]items.Item, len(found))
	for i, it := range found {
		out[i] = *it
	}
	return out
}
