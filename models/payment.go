package models

import "time"

type Payment struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	CustomerID string    `json:"customerId" gorm:"size:36;index;not null"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
