package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/pagination"
	"walletmate/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Name     string           `json:"name" binding:"required,max=200"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Category models.Category  `json:"category" binding:"required"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
type UpdateExpenseRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=200"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *models.Category `json:"category"`
}

// ExpensesResponse wraps a list of expenses.
type ExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// TotalResponse carries a summed amount.
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// CreateExpense handles recording a new expense against its category budget.
// @Summary     Create an expense
// @Description Record an expense. A budget must exist for the category with enough remaining.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input, no matching budget, or budget exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(req.Name, *req.Amount, req.Category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing expenses.
// @Summary     Get expenses
// @Description Get a paginated list of expenses in insertion order
// @Tags        expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Param       category  query string false "Filter by category"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.ExpenseFilter
	if v := c.Query("category"); v != "" {
		category := models.Category(v)
		filter.Category = &category
	}

	expenses, err := h.expenseService.ListExpenses(filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(expenses, page))
}

// GetTotal handles summing expense amounts.
// @Summary     Get expense total
// @Description Sum all expense amounts, optionally for one category
// @Tags        expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Param       category query string false "Limit to category"
// @Success     200 {object} TotalResponse "Total amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/total [get]
func (h *ExpenseHandler) GetTotal(c *gin.Context) {
	var category *models.Category
	if v := c.Query("category"); v != "" {
		cat := models.Category(v)
		category = &cat
	}

	total, err := h.expenseService.TotalExpenses(category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TotalResponse{Total: total})
}

// GetExpense handles retrieving a specific expense.
// @Summary     Get expense by ID
// @Description Get a specific expense by ID
// @Tags        expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles editing an expense. Budget spent amounts follow the change.
// @Summary     Update expense
// @Description Merge the given fields into an expense and reconcile the affected budgets
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, services.ExpenseUpdate{
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles removing an expense and releasing its amount.
// @Summary     Delete expense
// @Description Delete an expense and give its amount back to the category budget
// @Tags        expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpensesResponse "Remaining expenses"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	expenses, err := h.expenseService.DeleteExpense(expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}
