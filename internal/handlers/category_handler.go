package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/models"
)

// CategoriesResponse lists the accepted category values.
type CategoriesResponse struct {
	Expense []models.Category `json:"expense"`
	Budget  []models.Category `json:"budget"`
}

// CategoryHandler serves the fixed category enumerations
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the categories accepted by expenses and budgets.
// @Summary     List categories
// @Description Expense categories, and budget categories (which add Total)
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoriesResponse "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Expense: models.ExpenseCategories,
		Budget:  models.BudgetCategories,
	})
}
