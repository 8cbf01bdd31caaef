package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletmate/internal/services"
)

// DashboardHandler serves the aggregate spending overview.
type DashboardHandler struct {
	summaryService services.SummaryServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(summaryService services.SummaryServicer) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// GetDashboard handles retrieving the dashboard summary.
// @Summary     Get dashboard
// @Description Totals, utilization, per-budget progress and top spending categories
// @Tags        dashboard
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.summaryService.GetSummary()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
