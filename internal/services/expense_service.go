// Package services holds the domain computation layer: frequency-mode
// bucketing, forecast assembly, budget reconciliation, and period
// resolution. Gateway failures are never caught here; they propagate to the
// handlers unchanged.
package services

import (
	"fmt"
	"strconv"
	"time"

	"billtracker/internal/models"
	"billtracker/internal/repository"
)

// expenseService handles expense and bill business logic.
type expenseService struct {
	expenses   *repository.ExpenseRepository
	categories *repository.CategoryRepository
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(expenses *repository.ExpenseRepository, categories *repository.CategoryRepository) ExpenseServicer {
	return &expenseService{expenses: expenses, categories: categories}
}

// GetExpenseForecast returns the near-term total alongside the chronological
// forecast trend. The two frequency windows, (0,3] and (3,6], are fixed and
// independent of the bill-mode table.
func (s *expenseService) GetExpenseForecast() (*models.Forecast, error) {
	monthAmount, err := s.expenses.MonthTrend()
	if err != nil {
		return nil, err
	}

	forecast, err := s.expenses.Trend()
	if err != nil {
		return nil, err
	}

	return &models.Forecast{MonthAmount: monthAmount, Forecast: forecast}, nil
}

// GetBillsByMode returns the bills in the mode's frequency range together
// with the summed weekly total over the same range. An unrecognized mode
// falls through to the monthly range; the UI only ever sends the three
// known modes, so the fallback is graceful degradation rather than an
// error.
func (s *expenseService) GetBillsByMode(mode string) ([]models.Bill, float64, error) {
	low, high := 1, 3

	switch mode {
	case "weekly":
		low, high = 0, 1
	case "monthly":
		low, high = 1, 3
	case "yearly":
		low, high = 3, 6
	}

	bills, err := s.expenses.GetBills(low, high)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.expenses.GetTotal(low, high)
	if err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// GetExpense returns the stored expense plus the full category list for the
// UI's selection control. The literal id "new", or an id with no stored
// row, yields a blank record dated today.
func (s *expenseService) GetExpense(id string) (*models.Expense, []models.Category, error) {
	var expense *models.Expense

	if id != "new" {
		parsed, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid expense id %q: %w", id, err)
		}

		expense, err = s.expenses.Get(uint(parsed))
		if err != nil {
			return nil, nil, err
		}
	}

	if expense == nil {
		expense = &models.Expense{
			DueDate: time.Now().Format("2006-01-02"),
		}
	}

	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, nil, err
	}

	return expense, categories, nil
}

// GetBudget returns the per-category weekly budget aggregate.
func (s *expenseService) GetBudget() ([]models.Budget, error) {
	return s.expenses.GetByCategory()
}

// CreateExpense inserts a new expense row.
func (s *expenseService) CreateExpense(expense *models.Expense) error {
	return s.expenses.Insert(expense)
}

// UpdateExpense replaces the stored record for the given id.
func (s *expenseService) UpdateExpense(id uint, expense *models.Expense) error {
	return s.expenses.Update(id, expense)
}

// DeleteBill removes the expense with the given id.
func (s *expenseService) DeleteBill(id uint) error {
	return s.expenses.Delete(id)
}
