package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billtracker/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns every category ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
