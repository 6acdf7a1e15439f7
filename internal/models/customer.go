package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	WhatsAppNumber string    `json:"whatsapp_number" gorm:"unique;not null"`
	Name           string    `json:"name" gorm:"not null"`
	Pincode        string    `json:"pincode"`
	Address        string    `json:"address"`
	Landmark       string    `json:"landmark"`
	TotalOrders    int       `json:"total_orders" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
