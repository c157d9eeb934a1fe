package models

import "time"

type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	CustomerID string    `json:"customerId" gorm:"size:36;index;not null"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	Item       ItemType  `json:"item" gorm:"not null"` // snapshot at order time
	Price      float64   `json:"price" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
