package models

// Category is a spending category. Categories are seeded out of band and
// are read-only from this service's perspective.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Fullname string `gorm:"not null" json:"fullname"`
}

// TableName overrides the default table name.
func (Category) TableName() string { return "categories" }
