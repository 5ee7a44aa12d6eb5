package services

import (
	"billtracker/internal/models"
	"billtracker/internal/repository"
)

// categoryService exposes category reads to the handlers.
type categoryService struct {
	categories *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(categories *repository.CategoryRepository) CategoryServicer {
	return &categoryService{categories: categories}
}

// ListCategories returns every category ordered by short name.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.categories.GetAll()
}
