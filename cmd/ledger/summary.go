package main

import (
	"fmt"

	"walletmate/internal/cli"

	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Budget utilization and spending by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := a.ledger.Summary.GetSummary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.RenderTitle("WALLETMATE SUMMARY"))
			fmt.Fprint(out, cli.RenderTable(cli.Table{
				Rows: [][]string{
					{"Total budget", cli.FormatMoney(summary.TotalBudget)},
					{"Total spent", cli.FormatMoney(summary.TotalSpent)},
					{"Remaining", cli.FormatMoney(summary.Remaining)},
					{"---"},
					{"Utilization", cli.FormatPercent(summary.DisplayUtilization)},
				},
			}))

			if len(summary.Budgets) > 0 {
				rows := make([][]string, 0, len(summary.Budgets))
				for _, p := range summary.Budgets {
					rows = append(rows, []string{
						string(p.Budget.Category),
						cli.FormatMoney(p.Budget.SpentAmount),
						cli.FormatMoney(p.Budget.Amount),
						cli.FormatMoney(p.Remaining),
						cli.FormatPercent(p.Utilization),
					})
				}
				fmt.Fprint(out, cli.RenderTable(cli.Table{
					Title:   "Budgets",
					Headers: []string{"Category", "Spent", "Amount", "Remaining", "Used"},
					Rows:    rows,
				}))
			}

			if len(summary.TopCategories) > 0 {
				rows := make([][]string, 0, len(summary.TopCategories))
				for _, c := range summary.TopCategories {
					rows = append(rows, []string{string(c.Category), cli.FormatMoney(c.Amount)})
				}
				fmt.Fprint(out, cli.RenderTable(cli.Table{
					Title:   "Spending by category",
					Headers: []string{"Category", "Amount"},
					Rows:    rows,
				}))
			}

			if !summary.Consistent {
				fmt.Fprintln(out, cli.RenderWarning("Budget spent amounts disagree with recorded expenses. Run `ledger rebuild`."))
			}
			return nil
		},
	}
}
