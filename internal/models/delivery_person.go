package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryPerson struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"not null"`
	Phone            string     `json:"phone" gorm:"unique;not null"`
	Address          string     `json:"address"`
	AadharNumber     string     `json:"aadhar_number"`
	BikeNumber       string     `json:"bike_number"`
	Age              int        `json:"age"`
	Gender           string     `json:"gender"`
	BloodGroup       string     `json:"blood_group"`
	Pincode          string     `json:"pincode" gorm:"not null"`
	TimeOfWork       string     `json:"time_of_work"`
	SelectedPincodes StringList `json:"selected_pincodes" gorm:"type:text"`
	TotalDeliveries  int        `json:"total_deliveries" gorm:"default:0"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (p *DeliveryPerson) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Normalize fills defaults for rows created before the profile fields existed.
// Versioned-read adapter: every read path goes through this so legacy records
// look like fully populated ones.
func (p *DeliveryPerson) Normalize() {
	if p.Address == "" {
		p.Address = "Not provided"
	}
	if p.AadharNumber == "" {
		p.AadharNumber = "Not provided"
	}
	if p.BikeNumber == "" {
		p.BikeNumber = "Not provided"
	}
	if p.Age == 0 {
		p.Age = 25
	}
	if p.Gender == "" {
		p.Gender = "Not specified"
	}
	if p.BloodGroup == "" {
		p.BloodGroup = "Not specified"
	}
	if p.TimeOfWork == "" {
		p.TimeOfWork = "Not specified"
	}
	if len(p.SelectedPincodes) == 0 {
		p.SelectedPincodes = StringList{p.Pincode}
	}
}
