package models

// Budget is a per-category aggregate of weekly expense amounts. It is
// derived from the current expense rows on every request, never stored.
type Budget struct {
	Name       string  `json:"name"`
	CategoryID uint    `gorm:"column:categoryid" json:"categoryid"`
	Fullname   string  `json:"fullname"`
	Total      float64 `json:"total"`
}

// BudgetItem reconciles a category's nominal budget against actual tracked
// spend for one period. Monthly is the annualized projection of the weekly
// total (total * 52 / 12); Save is Monthly minus Actual.
type BudgetItem struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Actual  float64 `json:"actual"`
	Monthly float64 `json:"monthly"`
	Save    float64 `json:"save"`
}
