// Package handlers translates HTTP requests into service calls and service
// results into responses. Each handler performs exactly one operation, and
// every error is answered with the uniform 500 body.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billtracker/internal/models"
	"billtracker/internal/services"
)

// ExpenseHandler handles expense and bill requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// GetForecast returns the near-term total plus the forecast trend.
func (h *ExpenseHandler) GetForecast(c *gin.Context) {
	data, err := h.expenseService.GetExpenseForecast()
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// GetBills returns the bills for the requested mode together with their
// weekly total. A missing mode defaults to monthly.
func (h *ExpenseHandler) GetBills(c *gin.Context) {
	mode := c.Param("mode")
	if mode == "" {
		mode = "monthly"
	}

	bills, total, err := h.expenseService.GetBillsByMode(mode)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"expenses": bills, "total": total}})
}

// GetBudget returns the per-category weekly budget aggregate.
func (h *ExpenseHandler) GetBudget(c *gin.Context) {
	budget, err := h.expenseService.GetBudget()
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetExpense returns one expense plus the category list. The id "new"
// yields a blank template for the create form.
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, categories, err := h.expenseService.GetExpense(c.Param("id"))
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense, "categories": categories})
}

// CreateExpense inserts a new expense from the request body.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		respondInternalError(c, err)
		return
	}

	if err := h.expenseService.CreateExpense(&expense); err != nil {
		respondInternalError(c, err)
		return
	}

	c.String(http.StatusCreated, "Message Saved")
}

// UpdateExpense replaces the stored record for the path id.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondInternalError(c, err)
		return
	}

	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		respondInternalError(c, err)
		return
	}

	if err := h.expenseService.UpdateExpense(id, &expense); err != nil {
		respondInternalError(c, err)
		return
	}

	c.String(http.StatusOK, "Message Saved")
}

// DeleteBill removes the expense with the path id.
func (h *ExpenseHandler) DeleteBill(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondInternalError(c, err)
		return
	}

	if err := h.expenseService.DeleteBill(id); err != nil {
		respondInternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
