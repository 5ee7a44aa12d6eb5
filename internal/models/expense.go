package models

// Expense is a recurring expense or bill. The frequency code classifies its
// cadence and is always consumed via half-open ranges (low, high]:
// (0,1] weekly, (1,3] monthly, (3,6] yearly. Weekly holds the per-week
// normalized amount used for monthly and yearly projections; DueDate is an
// ISO YYYY-MM-DD date kept as text so year/month extraction stays portable
// across PostgreSQL and SQLite.
type Expense struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Category   string  `gorm:"not null" json:"category"`
	Payment    string  `json:"payment"`
	Freq       int     `gorm:"not null" json:"freq"`
	DueDate    string  `gorm:"column:duedate;not null" json:"duedate"`
	Amount     float64 `gorm:"not null" json:"amount"`
	Weekly     float64 `gorm:"not null" json:"weekly"`
	CategoryID uint    `gorm:"column:categoryid;not null" json:"categoryid"`
}

// TableName overrides the default table name.
func (Expense) TableName() string { return "expenses" }

// Bill is an expense row joined with its category's full display name, as
// returned by frequency-range listings.
type Bill struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Payment  string  `json:"payment"`
	Freq     int     `json:"freq"`
	DueDate  string  `gorm:"column:duedate" json:"duedate"`
	Amount   float64 `json:"amount"`
}

// BillTrend is a per-calendar-month sum of forecast-window bill amounts.
type BillTrend struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// Forecast pairs the near-term monthly total with the chronological
// forecast trend.
type Forecast struct {
	MonthAmount float64     `json:"monthAmount"`
	Forecast    []BillTrend `json:"forecast"`
}
