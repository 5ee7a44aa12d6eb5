package services

import "billtracker/internal/models"

// CategoryServicer defines the contract for category reads.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
}

// ExpenseServicer defines the contract for expense and bill business logic.
type ExpenseServicer interface {
	GetExpenseForecast() (*models.Forecast, error)
	GetBillsByMode(mode string) ([]models.Bill, float64, error)
	GetExpense(id string) (*models.Expense, []models.Category, error)
	GetBudget() ([]models.Budget, error)
	CreateExpense(expense *models.Expense) error
	UpdateExpense(id uint, expense *models.Expense) error
	DeleteBill(id uint) error
}

// TrackingServicer defines the contract for budget tracking business logic.
type TrackingServicer interface {
	CreateTracking(tracking *models.Tracking) error
	GetTrackingByMonth(month string) (*models.TrackingReport, error)
}
