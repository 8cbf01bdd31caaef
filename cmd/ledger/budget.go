package main

import (
	"fmt"
	"io"

	"walletmate/internal/cli"
	"walletmate/internal/models"
	"walletmate/internal/services"

	"github.com/spf13/cobra"
)

func newBudgetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "List budgets in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			budgets, err := a.ledger.Budgets.ListBudgets()
			if err != nil {
				return err
			}
			printBudgets(cmd.OutOrStdout(), budgets)
			return nil
		},
	}
}

func newBudgetCmd(a *app) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Create, update or remove a budget",
	}

	var (
		recurrence string
		duration   int
	)
	setCmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the allocation for a category",
		Long:  "Creates a budget for the category, or replaces the amount of the existing one while keeping what has been spent.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			input := services.BudgetInput{
				Category:       models.Category(args[0]),
				Amount:         amount,
				RecurrenceType: models.RecurrenceType(recurrence),
			}
			if cmd.Flags().Changed("duration") {
				input.RecurrenceDuration = &duration
			}

			budgets, err := a.ledger.Budgets.CreateOrUpdateBudget(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK(fmt.Sprintf("Budget for %s set to %s", args[0], cli.FormatMoney(amount))))
			printBudgets(cmd.OutOrStdout(), budgets)
			return nil
		},
	}
	setCmd.Flags().StringVarP(&recurrence, "recurrence", "r", "", "Recurrence (None, Daily, Weekly, Monthly, Quarterly, Annually)")
	setCmd.Flags().IntVarP(&duration, "duration", "d", 0, "Number of occurrences before the recurrence stops")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a budget; its expenses are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			budgets, err := a.ledger.Budgets.DeleteBudget(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK("Budget removed"))
			printBudgets(cmd.OutOrStdout(), budgets)
			return nil
		},
	}

	budgetCmd.AddCommand(setCmd, rmCmd)
	return budgetCmd
}

func newRolloverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rollover",
		Short: "Append the next occurrence of every recurring budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.ledger.Recurrence.CheckAndRollForward(nowFunc())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Created) == 0 {
				fmt.Fprintln(out, cli.RenderMuted("No recurring budgets to roll forward."))
				return nil
			}
			fmt.Fprintln(out, cli.RenderOK(fmt.Sprintf("Created %d budget occurrence(s)", len(result.Created))))
			printBudgets(out, result.Created)
			return nil
		},
	}
}

func newRebuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute every spent amount from the recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			budgets, err := a.ledger.Budgets.RebuildSpentAmounts()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK("Spent amounts rebuilt"))
			printBudgets(cmd.OutOrStdout(), budgets)
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories a budget may use",
		Args:  cobra.NoArgs,
		// The category list needs no ledger.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range models.AllCategories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
		},
	}
}

func printBudgets(w io.Writer, budgets []models.Budget) {
	if len(budgets) == 0 {
		fmt.Fprintln(w, cli.RenderMuted("No budgets yet. Use `ledger budget set` to create one."))
		return
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		recurrence := string(b.RecurrenceType)
		if b.RecurrenceType.IsRecurring() {
			recurrence += " x" + cli.FormatDuration(b.RecurrenceDuration)
		}
		rows = append(rows, []string{
			string(b.Category),
			cli.FormatMoney(b.Amount),
			cli.FormatMoney(b.SpentAmount),
			cli.FormatMoney(b.Remaining()),
			recurrence,
			cli.FormatDate(b.Date),
			b.ID,
		})
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Spent", "Remaining", "Recurrence", "Date", "ID"},
		Rows:    rows,
	}))
}
