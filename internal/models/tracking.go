package models

// Tracking is an append-only observation of actual spend for a category in
// a YYYY-MM period. Reads aggregate rows by sum per (period, category), so
// multiple incremental entries per pair are legitimate.
type Tracking struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	Period     string  `gorm:"not null" json:"period"`
	CategoryID uint    `gorm:"column:categoryid;not null" json:"categoryid"`
	Total      float64 `gorm:"not null" json:"total"`
}

// TableName overrides the default table name.
func (Tracking) TableName() string { return "tracking" }

// TrackingReport is the budget reconciliation view for one period, plus the
// month selector entries the UI renders.
type TrackingReport struct {
	MonthSelect  [][]string            `json:"monthSelect"`
	BudgetItems  map[string]BudgetItem `json:"budgetItems"`
	BudgetTotal  float64               `json:"budgetTotal"`
	MonthlyTotal float64               `json:"monthlyTotal"`
}
