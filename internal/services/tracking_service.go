package services

import (
	"fmt"
	"time"

	"billtracker/internal/models"
	"billtracker/internal/repository"
)

// trackingService reconciles nominal budgets against tracked actual spend.
type trackingService struct {
	tracking *repository.TrackingRepository
	expenses *repository.ExpenseRepository
	now      func() time.Time
}

// NewTrackingService creates a new TrackingServicer.
func NewTrackingService(tracking *repository.TrackingRepository, expenses *repository.ExpenseRepository) TrackingServicer {
	return &trackingService{tracking: tracking, expenses: expenses, now: time.Now}
}

// CreateTracking appends one actual-spend observation.
func (s *trackingService) CreateTracking(tracking *models.Tracking) error {
	return s.tracking.Insert(tracking)
}

// GetTrackingByMonth returns the budget reconciliation for the requested
// period plus the month selector entries. The token "current" resolves to
// the calendar month preceding now; anything else is a literal YYYY-MM
// period passed through unmodified.
func (s *trackingService) GetTrackingByMonth(month string) (*models.TrackingReport, error) {
	period := resolvePeriod(month, s.now())

	items, budgetTotal, monthlyTotal, err := s.trackingData(period)
	if err != nil {
		return nil, err
	}

	return &models.TrackingReport{
		MonthSelect:  monthSelect(s.now()),
		BudgetItems:  items,
		BudgetTotal:  budgetTotal,
		MonthlyTotal: monthlyTotal,
	}, nil
}

// trackingData builds the per-category budget items for one period. For
// each budget category the actual spend is the first tracking row with a
// matching category id, or zero when none exists. Monthly annualizes the
// weekly total before dividing into twelve months: total * 52 / 12, not
// total * 4.33.
func (s *trackingService) trackingData(period string) (map[string]models.BudgetItem, float64, float64, error) {
	tracking, err := s.tracking.GetByMonth(period)
	if err != nil {
		return nil, 0, 0, err
	}

	budget, err := s.expenses.GetByCategory()
	if err != nil {
		return nil, 0, 0, err
	}

	items := make(map[string]models.BudgetItem, len(budget))
	var budgetTotal, monthlyTotal float64

	for _, b := range budget {
		var actual float64
		for _, t := range tracking {
			if b.CategoryID == t.CategoryID {
				actual = t.Total
				break
			}
		}

		monthly := b.Total * 52 / 12
		save := monthly - actual

		items[b.Name] = models.BudgetItem{
			Name:    b.Fullname,
			Total:   b.Total,
			Actual:  actual,
			Monthly: monthly,
			Save:    save,
		}

		budgetTotal += monthly
		monthlyTotal += actual
	}

	return items, budgetTotal, monthlyTotal, nil
}

// resolvePeriod maps the "current" token to the month before now. Despite
// the name, "current" has always meant the previous calendar month: the UI
// tracks spend for a month once that month has closed.
func resolvePeriod(month string, now time.Time) string {
	if month != "current" {
		return month
	}

	// time.Date normalizes month zero to December of the prior year.
	prev := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	return prev.Format("2006-01")
}

// monthSelect produces the 36 selector entries spanning the year before
// through the year after now, each a (YYYY-MM, "MonthName Year") pair in
// chronological order.
func monthSelect(now time.Time) [][]string {
	currentYear := now.Year()
	entries := make([][]string, 0, 36)

	for year := currentYear - 1; year <= currentYear+1; year++ {
		for month := time.January; month <= time.December; month++ {
			value := fmt.Sprintf("%d-%02d", year, int(month))
			label := fmt.Sprintf("%s %d", month.String(), year)
			entries = append(entries, []string{value, label})
		}
	}

	return entries
}
