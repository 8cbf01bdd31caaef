package services

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"walletmate/internal/models"
)

var hundred = decimal.NewFromInt(100)

// summaryService builds the dashboard aggregate from both ledgers.
type summaryService struct {
	budgetService  BudgetServicer
	expenseService ExpenseServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(budgetService BudgetServicer, expenseService ExpenseServicer) SummaryServicer {
	return &summaryService{
		budgetService:  budgetService,
		expenseService: expenseService,
	}
}

// GetSummary computes the dashboard figures from one read of each collection.
// Total spent comes from the expense ledger, not from the budgets' spent
// amounts; Consistent reports whether the two agree.
func (s *summaryService) GetSummary() (*DashboardSummary, error) {
	budgets, err := s.budgetService.ListBudgets()
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseService.ListExpenses(ExpenseFilter{})
	if err != nil {
		return nil, err
	}

	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}
	totalSpent := decimal.Zero
	for _, e := range expenses {
		totalSpent = totalSpent.Add(e.Amount)
	}

	summary := &DashboardSummary{
		TotalBudget:        totalBudget,
		TotalSpent:         totalSpent,
		Remaining:          totalBudget.Sub(totalSpent),
		Utilization:        percentage(totalSpent, totalBudget),
		Budgets:            make([]BudgetProgress, 0, len(budgets)),
		ExpensesByCategory: make(map[models.Category]decimal.Decimal),
	}
	summary.DisplayUtilization = math.Min(math.Max(summary.Utilization, 0), 100)

	sumSpent := decimal.Zero
	for _, b := range budgets {
		sumSpent = sumSpent.Add(b.SpentAmount)
		summary.Budgets = append(summary.Budgets, BudgetProgress{
			Budget:      b,
			Remaining:   b.Remaining(),
			Utilization: percentage(b.SpentAmount, b.Amount),
		})
	}
	summary.Consistent = sumSpent.Equal(totalSpent)

	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		summary.ExpensesByCategory[category] = summary.ExpensesByCategory[category].Add(e.Amount)
	}

	summary.TopCategories = make([]CategoryTotal, 0, len(summary.ExpensesByCategory))
	for category, amount := range summary.ExpensesByCategory {
		summary.TopCategories = append(summary.TopCategories, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(summary.TopCategories, func(i, j int) bool {
		a, b := summary.TopCategories[i], summary.TopCategories[j]
		if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
			return cmp > 0
		}
		return a.Category < b.Category
	})

	return summary, nil
}

// percentage returns part/whole*100, or 0 when whole is not positive.
func percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
