package models

import "time"

type Item struct {
	ItemName    string    `json:"item_name" gorm:"primaryKey"`
	TypeOfItem  string    `json:"type_of_item"`
	Price       float64   `json:"price" gorm:"not null"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
