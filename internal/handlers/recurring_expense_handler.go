package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/models"
	"walletmate/internal/services"
)

// RecurringExpenseHandler handles the recurring expense templates.
type RecurringExpenseHandler struct {
	recurringExpenseService services.RecurringExpenseServicer
}

// NewRecurringExpenseHandler creates a new RecurringExpenseHandler.
func NewRecurringExpenseHandler(recurringExpenseService services.RecurringExpenseServicer) *RecurringExpenseHandler {
	return &RecurringExpenseHandler{recurringExpenseService: recurringExpenseService}
}

// RecurringExpensesResponse wraps the recurring expense templates.
type RecurringExpensesResponse struct {
	RecurringExpenses []models.RecurringExpense `json:"recurringExpenses"`
}

// SaveRecurringExpense handles storing a new template.
// @Summary     Create a recurring expense
// @Description Store a free-form recurring expense template. The server assigns the id.
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body object true "Template fields"
// @Success     201 {object} models.RecurringExpense "Stored template"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses [post]
func (h *RecurringExpenseHandler) SaveRecurringExpense(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recurringExpenseService.SaveRecurringExpense(fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recurringExpense": record})
}

// GetRecurringExpenses handles listing templates.
// @Summary     Get recurring expenses
// @Description Get all recurring expense templates
// @Tags        recurring-expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} RecurringExpensesResponse "Templates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses [get]
func (h *RecurringExpenseHandler) GetRecurringExpenses(c *gin.Context) {
	records, err := h.recurringExpenseService.ListRecurringExpenses()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, RecurringExpensesResponse{RecurringExpenses: records})
}

// UpdateRecurringExpense handles merging fields into a template.
// @Summary     Update recurring expense
// @Description Merge fields into a template. The id cannot be changed.
// @Tags        recurring-expenses
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string true "Template ID"
// @Param       request body object true "Fields to update"
// @Success     200 {object} MessageResponse "Updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses/{id} [put]
func (h *RecurringExpenseHandler) UpdateRecurringExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.recurringExpenseService.UpdateRecurringExpense(id, fields); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Recurring expense updated successfully"})
}

// DeleteRecurringExpense handles removing a template.
// @Summary     Delete recurring expense
// @Description Delete a recurring expense template by ID
// @Tags        recurring-expenses
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} MessageResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring-expenses/{id} [delete]
func (h *RecurringExpenseHandler) DeleteRecurringExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.recurringExpenseService.DeleteRecurringExpense(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Recurring expense deleted successfully"})
}
