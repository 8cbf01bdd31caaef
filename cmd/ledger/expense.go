package main

import (
	"fmt"
	"io"

	"walletmate/internal/cli"
	"walletmate/internal/models"
	"walletmate/internal/services"

	"github.com/spf13/cobra"
)

func newExpensesCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List expenses in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter services.ExpenseFilter
			if category != "" {
				c := models.Category(category)
				filter.Category = &c
			}

			expenses, err := a.ledger.Expenses.ListExpenses(filter)
			if err != nil {
				return err
			}
			total, err := a.ledger.Expenses.TotalExpenses(filter.Category)
			if err != nil {
				return err
			}
			printExpenses(cmd.OutOrStdout(), expenses)
			if len(expenses) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  Total: %s\n", cli.FormatMoney(total))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list expenses in this category")
	return cmd
}

func newExpenseCmd(a *app) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Record or remove an expense",
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <amount> <category>",
		Short: "Record an expense against the budget for its category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			expense, err := a.ledger.Expenses.CreateExpense(args[0], amount, models.Category(args[2]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK(fmt.Sprintf("Recorded %s (%s) in %s",
				expense.Name, cli.FormatMoney(expense.Amount), expense.Category)))
			fmt.Fprintf(cmd.OutOrStdout(), "  id: %s\n", expense.ID)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove an expense and return its amount to the budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenses, err := a.ledger.Expenses.DeleteExpense(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderOK("Expense removed"))
			printExpenses(cmd.OutOrStdout(), expenses)
			return nil
		},
	}

	expenseCmd.AddCommand(addCmd, rmCmd)
	return expenseCmd
}

func printExpenses(w io.Writer, expenses []models.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, cli.RenderMuted("No expenses recorded."))
		return
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.Name,
			cli.FormatMoney(e.Amount),
			string(e.Category),
			cli.FormatDate(e.Date),
			e.ID,
		})
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Amount", "Category", "Date", "ID"},
		Rows:    rows,
	}))
}
