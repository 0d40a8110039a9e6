package models

import "time"

// StatusIncomplete is the status every new order starts in. Order status is
// a display string: drivers and managers may later set it to any text.
const StatusIncomplete = "incomplete"

type FoodOrder struct {
	OrderID        uint          `json:"order_id" gorm:"primaryKey"`
	Login          string        `json:"login" gorm:"not null;index"`
	StoreID        uint          `json:"store_id" gorm:"not null"`
	TotalPrice     float64       `json:"total_price"`
	OrderTimestamp time.Time     `json:"order_timestamp"`
	OrderStatus    string        `json:"order_status" gorm:"not null;default:'incomplete'"`
	Items          []ItemInOrder `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type ItemInOrder struct {
	OrderID  uint   `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ItemName string `json:"item_name" gorm:"primaryKey"`
	Quantity int    `json:"quantity" gorm:"not null"`
}
