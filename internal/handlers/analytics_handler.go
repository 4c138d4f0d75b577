package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// AnalyticsHandler serves spending summaries and budget overviews.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns totals by category and by day for one month.
// @Summary     Spending summary
// @Description Total, count, per-category and per-day sums for a month (default: current month)
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} analytics.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), userID, query.Month, query.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBudgetOverview compares a month's spending with its budgets.
// @Summary     Budget overview
// @Description Remaining amount, percentage used and alert state for the month's budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} analytics.Overview "Overview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/overview [get]
func (h *AnalyticsHandler) GetBudgetOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	overview, err := h.analyticsService.BudgetOverview(c.Request.Context(), userID, query.Month, query.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
