package repository

import (
	"gorm.io/gorm"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
)

// CategoryRepository reads spending categories. Categories have no write
// path through this service.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns every category ordered by short name.
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Storage("list categories", err)
	}
	return categories, nil
}
