package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PinCode struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Pincode            string     `json:"pincode" gorm:"unique;not null"`
	AreaName           string     `json:"area_name" gorm:"not null"`
	IsServiceable      bool       `json:"is_serviceable" gorm:"default:true"`
	AvailableTimeSlots StringList `json:"available_time_slots" gorm:"type:text"` // e.g., ["6:00-8:00", "8:00-10:00"]
	DeliveryCharge     float64    `json:"delivery_charge" gorm:"default:0"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (p *PinCode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
