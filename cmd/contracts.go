package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corsair-sc/corsair/internal/domain/items"
)

var contractsJSON bool

var contractsListCmd = &cobra.Command{
	Use:   "contracts:list",
	Short: "List Wikelo contracts resolved against the registry",
	Long: `List Wikelo trade contracts with every requirement resolved against the
item registry. Builtin contracts come first, then contracts from the user
items file. Requirement ids the registry does not know are flagged rather
than dropped.

Examples:
  corsair contracts:list
  corsair contracts:list --json | jq '.[].Contract.name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := buildServices()
		if err != nil {
			return err
		}

		userFile, err := items.LoadItemsFile(services.ItemsPath)
		if err != nil {
			return err
		}
		contracts := append(items.BuiltinContracts(), userFile.Contracts...)

		plans := make([]items.ContractPlan, 0, len(contracts))
		for _, c := range contracts {
			plans = append(plans, items.ResolveContract(services.Items, c))
		}

		if contractsJSON {
			return printJSON(plans)
		}

		out := cmd.OutOrStdout()
		for i, plan := range plans {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", plan.Contract.Name)
			if plan.Contract.Reward != "" {
				fmt.Fprintf(out, "  reward: %s\n", plan.Contract.Reward)
			}
			for _, line := range plan.Lines {
				if line.Item == nil {
					fmt.Fprintf(out, "  %4d x %-30s (unknown item)\n", line.Requirement.Quantity, line.Requirement.ItemID)
					continue
				}
				src := line.Item.PrimarySource()
				where := "no known source"
				if src != nil {
					where = fmt.Sprintf("%s, %s (%s, %d/5)", src.Location.Name, src.Location.System, src.Method, src.Reliability)
				}
				fmt.Fprintf(out, "  %4d x %-30s %s\n", line.Requirement.Quantity, line.Item.Name, where)
			}
			if !plan.Complete() {
				fmt.Fprintf(out, "  intel gaps: %v\n", plan.UnknownIDs)
			}
		}
		return nil
	},
}

func init() {
	contractsListCmd.Flags().BoolVar(&contractsJSON, "json", false, "emit JSON instead of text")
	rootCmd.AddCommand(contractsListCmd)
}
