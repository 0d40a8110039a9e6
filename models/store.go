package models

// Store locations are seeded out of band; this client only reads them.
type Store struct {
	StoreID     uint    `json:"store_id" gorm:"primaryKey"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	IsOpen      bool    `json:"is_open" gorm:"default:true"`
	ReviewScore float64 `json:"review_score" gorm:"default:0"`
}
