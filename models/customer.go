package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ItemType enumerates the deliverable item kinds
type ItemType string

const (
	ItemMilk     ItemType = "milk"
	ItemWaterJar ItemType = "water_jar"
	ItemTiffin   ItemType = "tiffin"
)

// PaymentCadence defines how often a customer settles their bill
type PaymentCadence string

const (
	CadenceDaily   PaymentCadence = "daily"
	CadenceWeekly  PaymentCadence = "weekly"
	CadenceMonthly PaymentCadence = "monthly"
)

// WeekDays is the full set of valid off-day values
var WeekDays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// OffDayList is a set of weekly non-delivery days, persisted as a JSON array
type OffDayList []string

func (d OffDayList) Value() (driver.Value, error) {
	if d == nil {
		d = OffDayList{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *OffDayList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = OffDayList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), d)
	case []byte:
		return json.Unmarshal(v, d)
	default:
		return fmt.Errorf("cannot scan off-days from %T", src)
	}
}

type Customer struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	Name            string         `json:"name" gorm:"not null"`
	Phone           string         `json:"phone" gorm:"uniqueIndex;not null"`
	Address         string         `json:"address"`
	DefaultItem     ItemType       `json:"defaultItem" gorm:"not null;default:'milk'"`
	DefaultPrice    float64        `json:"defaultPrice" gorm:"not null"`
	DefaultQuantity int            `json:"defaultQuantity" gorm:"not null;default:1"`
	PaymentCadence  PaymentCadence `json:"paymentCadence" gorm:"not null;default:'monthly'"`
	OffDays         OffDayList     `json:"offDays" gorm:"type:text"`
	IsActive        bool           `json:"isActive" gorm:"default:true;index"`
	AccessKeyHash   string         `json:"-" gorm:"size:64;index"`
	AccessKeyExpiry time.Time      `json:"accessKeyExpiry"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
