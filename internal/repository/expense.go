// Package repository is the persistence gateway: each method is one
// parameterized query against the relational store, translating rows to
// domain records and wrapping failures as StorageErrors.
package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
)

// excludedCategory is left out of the weekly and near-term forecast totals.
// Discretionary spending tracked under it is not a recurring obligation.
const excludedCategory = "Spurge"

// ExpenseRepository persists expenses and computes the aggregates the
// domain layer consumes.
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// GetByCategory returns the per-category sum of weekly amounts across all
// expenses, joined with the category names. No date filter applies.
func (r *ExpenseRepository) GetByCategory() ([]models.Budget, error) {
	var budget []models.Budget
	err := r.db.Raw(`
		SELECT c.name, e.categoryid, c.fullname, SUM(e.weekly) AS total
		FROM expenses e
		INNER JOIN categories c ON e.categoryid = c.id
		GROUP BY c.name, c.fullname, e.categoryid`).Scan(&budget).Error
	if err != nil {
		return nil, apperrors.Storage("expenses by category", err)
	}
	return budget, nil
}

// GetWeeklyTotal returns the sum of weekly amounts over all expenses
// outside the excluded category. Zero when there are no rows.
func (r *ExpenseRepository) GetWeeklyTotal() (float64, error) {
	var total float64
	err := r.db.Raw(
		"SELECT COALESCE(SUM(weekly), 0) FROM expenses WHERE category <> ?",
		excludedCategory,
	).Scan(&total).Error
	if err != nil {
		return 0, apperrors.Storage("weekly total", err)
	}
	return total, nil
}

// GetTotal returns the sum of weekly amounts for expenses with
// freq > low and freq <= high. Zero when there are no rows.
func (r *ExpenseRepository) GetTotal(low, high int) (float64, error) {
	var total float64
	err := r.db.Raw(
		"SELECT COALESCE(SUM(weekly), 0) FROM expenses WHERE freq > ? AND freq <= ?",
		low, high,
	).Scan(&total).Error
	if err != nil {
		return 0, apperrors.Storage("weekly total by frequency", err)
	}
	return total, nil
}

// GetBills lists expenses in the frequency range (low, high], joined with
// the category full name and ordered by due date ascending.
func (r *ExpenseRepository) GetBills(low, high int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Raw(`
		SELECT e.id, e.name, c.fullname AS category, e.payment, e.freq, e.duedate, e.amount
		FROM expenses e
		INNER JOIN categories c ON e.categoryid = c.id
		WHERE e.freq > ? AND e.freq <= ?
		ORDER BY e.duedate`, low, high).Scan(&bills).Error
	if err != nil {
		return nil, apperrors.Storage("bills by frequency", err)
	}
	return bills, nil
}

// Trend returns forecast-window amounts summed per calendar month, ordered
// chronologically. The due date is ISO text, so SUBSTR extracts year and
// month identically on PostgreSQL and SQLite.
func (r *ExpenseRepository) Trend() ([]models.BillTrend, error) {
	var trend []models.BillTrend
	err := r.db.Raw(`
		SELECT CAST(SUBSTR(duedate, 1, 4) AS INTEGER) AS year,
		       CAST(SUBSTR(duedate, 6, 2) AS INTEGER) AS month,
		       SUM(amount) AS amount
		FROM expenses
		WHERE freq > 3 AND freq <= 6
		GROUP BY SUBSTR(duedate, 1, 4), SUBSTR(duedate, 6, 2)
		ORDER BY year, month`).Scan(&trend).Error
	if err != nil {
		return nil, apperrors.Storage("bill trend", err)
	}
	return trend, nil
}

// MonthTrend returns the near-term forecast total: amounts in the (0,3]
// frequency bucket outside the excluded category. Zero when no rows match.
func (r *ExpenseRepository) MonthTrend() (float64, error) {
	var amount float64
	err := r.db.Raw(
		"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE freq > 0 AND freq <= 3 AND category <> ?",
		excludedCategory,
	).Scan(&amount).Error
	if err != nil {
		return 0, apperrors.Storage("month trend", err)
	}
	return amount, nil
}

// Get returns the expense with the given id, or nil when absent. A missing
// row is not an error.
func (r *ExpenseRepository) Get(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("get expense", err)
	}
	return &expense, nil
}

// Insert appends one expense row.
func (r *ExpenseRepository) Insert(expense *models.Expense) error {
	return apperrors.Storage("insert expense", r.db.Create(expense).Error)
}

// Update replaces every mutable column of the expense with the given id.
// Updating a missing id is a no-op.
func (r *ExpenseRepository) Update(id uint, expense *models.Expense) error {
	err := r.db.Model(&models.Expense{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       expense.Name,
		"category":   expense.Category,
		"payment":    expense.Payment,
		"freq":       expense.Freq,
		"duedate":    expense.DueDate,
		"amount":     expense.Amount,
		"weekly":     expense.Weekly,
		"categoryid": expense.CategoryID,
	}).Error
	return apperrors.Storage("update expense", err)
}

// Delete removes the expense with the given id. Deleting a missing id
// succeeds; delete is idempotent.
func (r *ExpenseRepository) Delete(id uint) error {
	return apperrors.Storage("delete expense", r.db.Delete(&models.Expense{}, id).Error)
}
