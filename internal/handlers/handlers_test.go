package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"walletmate/internal/logger"
	"walletmate/internal/middleware"
	"walletmate/internal/models"
	"walletmate/internal/services"
	"walletmate/internal/store"
	appvalidator "walletmate/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	appvalidator.Register()
}

const (
	testBudgetID  = "0192f5a4-7c1e-7d2a-9b3c-4d5e6f708192"
	testExpenseID = "0192f5a4-7c1e-7d2a-9b3c-4d5e6f708193"
)

// newTestRouter returns an engine that renders reported errors the way the
// server does.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock budget service ---

type mockBudgetService struct {
	createOrUpdateBudgetFn func(input services.BudgetInput) ([]models.Budget, error)
	listBudgetsFn          func() ([]models.Budget, error)
	getBudgetByIDFn        func(id string) (*models.Budget, error)
	updateBudgetFn         func(id string, update services.BudgetUpdate) ([]models.Budget, error)
	deleteBudgetFn         func(id string) ([]models.Budget, error)
	rebuildSpentAmountsFn  func() ([]models.Budget, error)
}

func (m *mockBudgetService) CreateOrUpdateBudget(input services.BudgetInput) ([]models.Budget, error) {
	if m.createOrUpdateBudgetFn != nil {
		return m.createOrUpdateBudgetFn(input)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) ListBudgets() ([]models.Budget, error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn()
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByID(id string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(id)
	}
	return &models.Budget{ID: id}, nil
}

func (m *mockBudgetService) UpdateBudget(id string, update services.BudgetUpdate) ([]models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(id, update)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(id string) ([]models.Budget, error) {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(id)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) AdjustSpentAmount(models.Category, decimal.Decimal) error {
	return nil
}

func (m *mockBudgetService) ApplySpentAdjustments(*store.Store, ...services.SpentAdjustment) error {
	return nil
}

func (m *mockBudgetService) TotalBudget() (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockBudgetService) RebuildSpentAmounts() ([]models.Budget, error) {
	if m.rebuildSpentAmountsFn != nil {
		return m.rebuildSpentAmountsFn()
	}
	return []models.Budget{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- mock recurrence service ---

type mockRecurrenceService struct {
	checkAndRollForwardFn func(now time.Time) (*services.RolloverResult, error)
}

func (m *mockRecurrenceService) CheckAndRollForward(now time.Time) (*services.RolloverResult, error) {
	if m.checkAndRollForwardFn != nil {
		return m.checkAndRollForwardFn(now)
	}
	return &services.RolloverResult{Budgets: []models.Budget{}, Created: []models.Budget{}}, nil
}

var _ services.RecurrenceServicer = (*mockRecurrenceService)(nil)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn  func(name string, amount decimal.Decimal, category models.Category) (*models.Expense, error)
	listExpensesFn   func(filter services.ExpenseFilter) ([]models.Expense, error)
	getExpenseByIDFn func(id string) (*models.Expense, error)
	updateExpenseFn  func(id string, update services.ExpenseUpdate) (*models.Expense, error)
	deleteExpenseFn  func(id string) ([]models.Expense, error)
	totalExpensesFn  func(category *models.Category) (decimal.Decimal, error)
}

func (m *mockExpenseService) CreateExpense(name string, amount decimal.Decimal, category models.Category) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(name, amount, category)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) ListExpenses(filter services.ExpenseFilter) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(filter)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(id string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(id)
	}
	return &models.Expense{ID: id}, nil
}

func (m *mockExpenseService) UpdateExpense(id string, update services.ExpenseUpdate) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(id, update)
	}
	return &models.Expense{ID: id}, nil
}

func (m *mockExpenseService) DeleteExpense(id string) ([]models.Expense, error) {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(id)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) TotalExpenses(category *models.Category) (decimal.Decimal, error) {
	if m.totalExpensesFn != nil {
		return m.totalExpensesFn(category)
	}
	return decimal.Zero, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- mock recurring expense service ---

type mockRecurringExpenseService struct {
	saveFn   func(fields map[string]any) (models.RecurringExpense, error)
	listFn   func() ([]models.RecurringExpense, error)
	updateFn func(id string, fields map[string]any) error
	deleteFn func(id string) error
}

func (m *mockRecurringExpenseService) SaveRecurringExpense(fields map[string]any) (models.RecurringExpense, error) {
	if m.saveFn != nil {
		return m.saveFn(fields)
	}
	return models.RecurringExpense{}, nil
}

func (m *mockRecurringExpenseService) ListRecurringExpenses() ([]models.RecurringExpense, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.RecurringExpense{}, nil
}

func (m *mockRecurringExpenseService) UpdateRecurringExpense(id string, fields map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil
}

func (m *mockRecurringExpenseService) DeleteRecurringExpense(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.RecurringExpenseServicer = (*mockRecurringExpenseService)(nil)

// --- mock summary service ---

type mockSummaryService struct {
	getSummaryFn func() (*services.DashboardSummary, error)
}

func (m *mockSummaryService) GetSummary() (*services.DashboardSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn()
	}
	return &services.DashboardSummary{}, nil
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)
