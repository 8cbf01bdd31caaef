package services

import (
	"time"

	"github.com/shopspring/decimal"

	"walletmate/internal/models"
	"walletmate/internal/store"
)

// BudgetInput holds the fields accepted when creating or updating a budget by category.
type BudgetInput struct {
	Category           models.Category
	Amount             decimal.Decimal
	RecurrenceType     models.RecurrenceType
	RecurrenceDuration *int
}

// BudgetUpdate holds the fields merged into an existing budget. Nil fields are left unchanged.
type BudgetUpdate struct {
	Category           *models.Category
	Amount             *decimal.Decimal
	SpentAmount        *decimal.Decimal
	Date               *time.Time
	RecurrenceType     *models.RecurrenceType
	RecurrenceDuration *int
}

// SpentAdjustment moves the spent amount of the budget for Category by Delta.
type SpentAdjustment struct {
	Category models.Category
	Delta    decimal.Decimal
}

// BudgetServicer defines the contract for the budget ledger.
type BudgetServicer interface {
	CreateOrUpdateBudget(input BudgetInput) ([]models.Budget, error)
	ListBudgets() ([]models.Budget, error)
	GetBudgetByID(id string) (*models.Budget, error)
	UpdateBudget(id string, update BudgetUpdate) ([]models.Budget, error)
	DeleteBudget(id string) ([]models.Budget, error)
	AdjustSpentAmount(category models.Category, delta decimal.Decimal) error
	ApplySpentAdjustments(tx *store.Store, adjustments ...SpentAdjustment) error
	TotalBudget() (decimal.Decimal, error)
	RebuildSpentAmounts() ([]models.Budget, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Category *models.Category
}

// ExpenseUpdate holds the fields merged into an existing expense. Nil fields are left unchanged.
type ExpenseUpdate struct {
	Name     *string
	Amount   *decimal.Decimal
	Category *models.Category
}

// ExpenseServicer defines the contract for the expense ledger.
type ExpenseServicer interface {
	CreateExpense(name string, amount decimal.Decimal, category models.Category) (*models.Expense, error)
	ListExpenses(filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(id string) (*models.Expense, error)
	UpdateExpense(id string, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(id string) ([]models.Expense, error)
	TotalExpenses(category *models.Category) (decimal.Decimal, error)
}

// RolloverResult reports the outcome of a recurrence check.
type RolloverResult struct {
	Budgets []models.Budget `json:"budgets"`
	Created []models.Budget `json:"created"`
}

// RecurrenceServicer defines the contract for budget rollover.
type RecurrenceServicer interface {
	CheckAndRollForward(now time.Time) (*RolloverResult, error)
}

// RecurringExpenseServicer defines the contract for free-form recurring expense templates.
type RecurringExpenseServicer interface {
	SaveRecurringExpense(fields map[string]any) (models.RecurringExpense, error)
	ListRecurringExpenses() ([]models.RecurringExpense, error)
	UpdateRecurringExpense(id string, fields map[string]any) error
	DeleteRecurringExpense(id string) error
}

// BudgetProgress contains spending vs allocation for one budget.
type BudgetProgress struct {
	Budget      models.Budget   `json:"budget"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization float64         `json:"utilization"`
}

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DashboardSummary contains the aggregate figures shown on the dashboard.
type DashboardSummary struct {
	TotalBudget        decimal.Decimal                     `json:"totalBudget"`
	TotalSpent         decimal.Decimal                     `json:"totalSpent"`
	Remaining          decimal.Decimal                     `json:"remaining"`
	Utilization        float64                             `json:"utilization"`
	DisplayUtilization float64                             `json:"displayUtilization"`
	Consistent         bool                                `json:"consistent"`
	Budgets            []BudgetProgress                    `json:"budgets"`
	ExpensesByCategory map[models.Category]decimal.Decimal `json:"expensesByCategory"`
	TopCategories      []CategoryTotal                     `json:"topCategories"`
}

// SummaryServicer defines the contract for dashboard aggregates.
type SummaryServicer interface {
	GetSummary() (*DashboardSummary, error)
}
