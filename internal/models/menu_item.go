package models

// MenuItem represents a sellable item in the café catalog
type MenuItem struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"size:1000"`
	Category    string  `json:"category" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Image       string  `json:"image" gorm:"size:500"`
	Popular     bool    `json:"popular" gorm:"default:false"`
}

// TableName overrides the default table name used by GORM
func (MenuItem) TableName() string {
	return "menu_items"
}
