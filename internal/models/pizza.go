package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Ingredients string `json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
