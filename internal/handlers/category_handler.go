package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletmate/internal/models"
)

// CategoryHandler serves the fixed list of budget categories.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoriesResponse lists the budget categories.
type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

// GetCategories handles listing the budget categories
// @Summary     Get categories
// @Description Get the categories a budget may use
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} CategoriesResponse "Budget categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: models.AllCategories()})
}
