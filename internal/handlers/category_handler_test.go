package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetly/internal/models"
)

func TestCategoryHandler_GetCategories(t *testing.T) {
	r := gin.New()
	r.GET("/categories", NewCategoryHandler().GetCategories)

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	expense := result["expense"].([]interface{})
	budget := result["budget"].([]interface{})
	if len(expense) != len(models.ExpenseCategories) {
		t.Errorf("expected %d expense categories, got %d", len(models.ExpenseCategories), len(expense))
	}
	if len(budget) != len(expense)+1 || budget[len(budget)-1] != "Total" {
		t.Errorf("expected budget categories to add Total, got %v", budget)
	}
	for _, c := range expense {
		if c == "Total" {
			t.Error("Total must not be an expense category")
		}
	}
}
