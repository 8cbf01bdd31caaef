package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"walletmate/internal/models"
	"walletmate/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService     services.BudgetServicer
	recurrenceService services.RecurrenceServicer
	now               func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, recurrenceService services.RecurrenceServicer) *BudgetHandler {
	return &BudgetHandler{
		budgetService:     budgetService,
		recurrenceService: recurrenceService,
		now:               time.Now,
	}
}

// SetBudgetRequest represents the request payload for creating or updating
// the budget of a category.
type SetBudgetRequest struct {
	Category           models.Category       `json:"category" binding:"required,budget_category"`
	Amount             *decimal.Decimal      `json:"amount" binding:"required"`
	RecurrenceType     models.RecurrenceType `json:"recurrenceType" binding:"omitempty,recurrence_type"`
	RecurrenceDuration *int                  `json:"recurrenceDuration" binding:"omitempty,min=0"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Category           *models.Category       `json:"category" binding:"omitempty,budget_category"`
	Amount             *decimal.Decimal       `json:"amount"`
	SpentAmount        *decimal.Decimal       `json:"spentAmount"`
	Date               *time.Time             `json:"date"`
	RecurrenceType     *models.RecurrenceType `json:"recurrenceType" binding:"omitempty,recurrence_type"`
	RecurrenceDuration *int                   `json:"recurrenceDuration" binding:"omitempty,min=0"`
}

// BudgetsResponse wraps the full budget collection.
type BudgetsResponse struct {
	Budgets []models.Budget `json:"budgets"`
}

// RolloverResponse reports the budgets after a recurrence check.
type RolloverResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Created []models.Budget `json:"created"`
}

// SetBudget handles creating a budget or replacing the amount of an existing one.
// @Summary     Create or update a budget
// @Description Set the allocation for a category. An existing budget for the category keeps its spent amount.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} BudgetsResponse "All budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	budgets, err := h.budgetService.CreateOrUpdateBudget(services.BudgetInput{
		Category:           req.Category,
		Amount:             *req.Amount,
		RecurrenceType:     req.RecurrenceType,
		RecurrenceDuration: req.RecurrenceDuration,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudgets handles listing every budget.
// @Summary     Get budgets
// @Description Get all budgets in insertion order
// @Tags        budgets
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} BudgetsResponse "All budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets, err := h.budgetService.ListBudgets()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a specific budget by ID
// @Tags        budgets
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(budgetID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles merging fields into an existing budget.
// @Summary     Update budget
// @Description Merge the given fields into a budget. An unknown ID leaves the budgets unchanged.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to update"
// @Success     200 {object} BudgetsResponse "All budgets"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	budgets, err := h.budgetService.UpdateBudget(budgetID, services.BudgetUpdate{
		Category:           req.Category,
		Amount:             req.Amount,
		SpentAmount:        req.SpentAmount,
		Date:               req.Date,
		RecurrenceType:     req.RecurrenceType,
		RecurrenceDuration: req.RecurrenceDuration,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// DeleteBudget handles removing a budget. Expenses in its category are kept.
// @Summary     Delete budget
// @Description Delete a budget by ID
// @Tags        budgets
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} BudgetsResponse "Remaining budgets"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	budgets, err := h.budgetService.DeleteBudget(budgetID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// Rollover handles running the recurrence check.
// @Summary     Roll recurring budgets forward
// @Description Append the next occurrence of every recurring budget
// @Tags        budgets
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} RolloverResponse "Budgets after the check"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/rollover [post]
func (h *BudgetHandler) Rollover(c *gin.Context) {
	result, err := h.recurrenceService.CheckAndRollForward(h.now())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, RolloverResponse{Budgets: result.Budgets, Created: result.Created})
}

// RebuildSpentAmounts handles recomputing spent amounts from the expenses.
// @Summary     Rebuild spent amounts
// @Description Recompute every budget's spent amount from the recorded expenses
// @Tags        budgets
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} BudgetsResponse "Rebuilt budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/rebuild [post]
func (h *BudgetHandler) RebuildSpentAmounts(c *gin.Context) {
	budgets, err := h.budgetService.RebuildSpentAmounts()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}
