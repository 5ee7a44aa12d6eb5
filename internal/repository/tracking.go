package repository

import (
	"gorm.io/gorm"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
)

// TrackingRepository persists actual-spend observations. Rows are only ever
// appended; reads collapse them into one sum per (period, category).
type TrackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new TrackingRepository.
func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// Insert appends one tracking row.
func (r *TrackingRepository) Insert(tracking *models.Tracking) error {
	return apperrors.Storage("insert tracking", r.db.Create(tracking).Error)
}

// GetByMonth returns the summed actual spend per category for one period.
func (r *TrackingRepository) GetByMonth(period string) ([]models.Tracking, error) {
	var rows []models.Tracking
	err := r.db.Raw(`
		SELECT period, categoryid, SUM(total) AS total
		FROM tracking
		WHERE period = ?
		GROUP BY period, categoryid`, period).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("tracking by month", err)
	}
	return rows, nil
}
