package testutil

import (
	"testing"

	"gorm.io/gorm"

	"billtracker/internal/models"
)

// CreateTestCategory creates a category with the given names.
func CreateTestCategory(t *testing.T, db *gorm.DB, name, fullname string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Fullname: fullname}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense in the given category.
func CreateTestExpense(t *testing.T, db *gorm.DB, name string, categoryID uint, category string, freq int, dueDate string, amount, weekly float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Name:       name,
		Category:   category,
		Payment:    "Visa",
		Freq:       freq,
		DueDate:    dueDate,
		Amount:     amount,
		Weekly:     weekly,
		CategoryID: categoryID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTracking appends a tracking row for the period and category.
func CreateTestTracking(t *testing.T, db *gorm.DB, period string, categoryID uint, total float64) *models.Tracking {
	t.Helper()

	tracking := &models.Tracking{Period: period, CategoryID: categoryID, Total: total}
	if err := db.Create(tracking).Error; err != nil {
		t.Fatalf("failed to create test tracking row: %v", err)
	}
	return tracking
}
