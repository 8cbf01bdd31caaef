package main

import (
	"fmt"
	"time"

	"walletmate/internal/config"
	"walletmate/internal/database"
	apperrors "walletmate/internal/errors"
	"walletmate/internal/services"
	"walletmate/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// nowFunc is the clock handed to the recurrence check.
var nowFunc = time.Now

// ledgerOpener returns a ready ledger and a function releasing its resources.
type ledgerOpener func() (*services.Ledger, func(), error)

// app carries the ledger shared by every subcommand of one invocation.
type app struct {
	open    ledgerOpener
	ledger  *services.Ledger
	closeFn func()
}

func newRootCmd(open ledgerOpener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:           "ledger",
		Short:         "WalletMate budget and expense ledger",
		Long:          "Manage category budgets and the expenses recorded against them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			ledger, closeFn, err := a.open()
			if err != nil {
				return err
			}
			a.ledger = ledger
			a.closeFn = closeFn
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.closeFn != nil {
				a.closeFn()
			}
		},
	}

	rootCmd.AddCommand(
		newBudgetsCmd(a),
		newBudgetCmd(a),
		newExpensesCmd(a),
		newExpenseCmd(a),
		newRolloverCmd(a),
		newRebuildCmd(a),
		newSummaryCmd(a),
		newCategoriesCmd(),
	)

	return rootCmd
}

// openLedger opens the configured database, applies pending migrations and
// wires the ledger services over it.
func openLedger() (*services.Ledger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	ledger := services.NewLedger(store.New(dbManager.DB()), cfg.RecurrencePolicy)
	return ledger, func() { _ = dbManager.Close() }, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid amount %q", raw))
	}
	return d, nil
}
