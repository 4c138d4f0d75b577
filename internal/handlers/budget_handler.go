package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/models"
	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// UpsertBudgetRequest represents the request payload for setting a budget.
// An omitted category means the whole-month Total budget.
type UpsertBudgetRequest struct {
	Month    int             `json:"month" binding:"required,min=1,max=12"`
	Year     int             `json:"year" binding:"required,min=2000"`
	Amount   *float64        `json:"amount" binding:"required,gte=0,lte=1000000000000"`
	Category models.Category `json:"category" binding:"omitempty,budget_category"`
}

// PeriodQuery selects a calendar month. Either part may be omitted.
type PeriodQuery struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=2000"`
}

// UpsertBudget creates the budget for a month and category, or overwrites
// its amount when one already exists.
// @Summary     Set a budget
// @Description Create or overwrite the budget for (month, year, category)
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), userID, req.Month, req.Year, req.Category, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.AuditUpsertBudget, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"month": budget.Month, "year": budget.Year, "category": budget.Category, "amount": budget.Amount})

	c.JSON(http.StatusOK, budget)
}

// GetBudgets handles listing budgets for the authenticated user.
// @Summary     List budgets
// @Description List budgets, most recent period first
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Filter by month (1-12)"
// @Param       year  query int false "Filter by year"
// @Success     200 {array}  models.Budget "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID, services.BudgetFilter{Month: query.Month, Year: query.Year})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// DeleteBudget handles permanent deletion of a budget.
// @Summary     Delete a budget
// @Description Permanently delete a budget owned by the authenticated user
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.AuditDeleteBudget, "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}
