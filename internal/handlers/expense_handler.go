package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/export"
	"budgetly/internal/models"
	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
	loc            *time.Location
	now            func() time.Time
}

// NewExpenseHandler creates a new ExpenseHandler. Bare dates in requests are
// interpreted in loc.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer, loc *time.Location) *ExpenseHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService, loc: loc, now: time.Now}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required,notblank,max=200"`
	Amount      *float64        `json:"amount" binding:"required,gte=0,lte=1000000000000"`
	Category    models.Category `json:"category" binding:"required,expense_category"`
	Date        string          `json:"date"`
	Description string          `json:"description" binding:"max=1000"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
// Omitted fields are left unchanged.
type UpdateExpenseRequest struct {
	Title       *string          `json:"title" binding:"omitempty,notblank,max=200"`
	Amount      *float64         `json:"amount" binding:"omitempty,gte=0,lte=1000000000000"`
	Category    *models.Category `json:"category" binding:"omitempty,expense_category"`
	Date        *string          `json:"date"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
}

// ListExpensesQuery holds the optional filters of the list and export endpoints.
type ListExpensesQuery struct {
	StartDate string          `form:"startDate"`
	EndDate   string          `form:"endDate"`
	Category  models.Category `form:"category" binding:"omitempty,expense_category"`
	Format    string          `form:"format"`
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Description Record a new expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	in := services.CreateExpenseInput{
		Title:       req.Title,
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != "" {
		date, _, err := parseFlexibleTime(req.Date, h.loc)
		if err != nil {
			respondWithError(c, validator.FieldInvalid("date", "date must be an RFC3339 timestamp or a YYYY-MM-DD date"))
			return
		}
		in.Date = &date
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.AuditCreateExpense, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"title": expense.Title, "amount": expense.Amount, "category": expense.Category})

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses handles listing expenses for the authenticated user.
// @Summary     List expenses
// @Description List the authenticated user's expenses, newest first
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       startDate query string false "Inclusive start (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "Inclusive end; a bare date covers the whole day"
// @Param       category  query string false "Filter by category"
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, _, err := h.bindFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense handles fetching a single expense.
// @Summary     Get an expense
// @Description Get an expense owned by the authenticated user
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense handles partial updates of an expense.
// @Summary     Update an expense
// @Description Update any subset of an expense's mutable fields
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	in := services.UpdateExpenseInput{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		date, _, err := parseFlexibleTime(*req.Date, h.loc)
		if err != nil {
			respondWithError(c, validator.FieldInvalid("date", "date must be an RFC3339 timestamp or a YYYY-MM-DD date"))
			return
		}
		in.Date = &date
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := make(map[string]interface{})
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Amount != nil {
		changes["amount"] = *req.Amount
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if in.Date != nil {
		changes["date"] = *in.Date
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	h.auditService.Log(c.Request.Context(), userID, services.AuditUpdateExpense, "expense", expenseID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles permanent deletion of an expense.
// @Summary     Delete an expense
// @Description Permanently delete an expense owned by the authenticated user
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, services.AuditDeleteExpense, "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}

// ExportExpenses streams the filtered expenses as a CSV or XLSX attachment.
// @Summary     Export expenses
// @Description Download the authenticated user's expenses as CSV or XLSX
// @Tags        expenses
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format    query string false "csv (default) or xlsx"
// @Param       startDate query string false "Inclusive start (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "Inclusive end; a bare date covers the whole day"
// @Param       category  query string false "Filter by category"
// @Success     200 {file}   file "Export file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, query, err := h.bindFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	format, ok := export.ParseFormat(query.Format)
	if !ok {
		respondWithError(c, validator.FieldInvalid("format", "format must be one of: csv, xlsx"))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// render fully before writing headers so a failure still yields a JSON error
	var buf bytes.Buffer
	if err := export.Write(&buf, format, expenses, h.loc); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+format.Filename(h.now().In(h.loc))+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// bindFilter reads and validates the list filters. A bare endDate is
// extended to the end of that day.
func (h *ExpenseHandler) bindFilter(c *gin.Context) (services.ExpenseFilter, ListExpensesQuery, error) {
	var query ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return services.ExpenseFilter{}, query, validator.BindingError(err)
	}

	var filter services.ExpenseFilter
	if query.StartDate != "" {
		start, _, err := parseFlexibleTime(query.StartDate, h.loc)
		if err != nil {
			return filter, query, validator.FieldInvalid("startDate", "startDate must be an RFC3339 timestamp or a YYYY-MM-DD date")
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, dateOnly, err := parseFlexibleTime(query.EndDate, h.loc)
		if err != nil {
			return filter, query, validator.FieldInvalid("endDate", "endDate must be an RFC3339 timestamp or a YYYY-MM-DD date")
		}
		if dateOnly {
			end = analytics.EndOfDay(end)
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, query, validator.FieldInvalid("endDate", "endDate must not be before startDate")
	}
	if query.Category != "" {
		category := query.Category
		filter.Category = &category
	}

	return filter, query, nil
}
