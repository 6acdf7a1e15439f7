package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderFrequency string

const (
	FrequencyOnce         OrderFrequency = "once"
	FrequencyAlternateDay OrderFrequency = "alternate_day"
	FrequencyDaily        OrderFrequency = "daily"
	FrequencyCustom       OrderFrequency = "custom"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	OrderNumber      string         `json:"order_number" gorm:"unique;not null"`
	CustomerID       string         `json:"customer_id" gorm:"not null;index"`
	Items            []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	DeliveryDate     string         `json:"delivery_date" gorm:"not null"` // YYYY-MM-DD
	DeliveryTimeSlot string         `json:"delivery_time_slot"`
	Frequency        OrderFrequency `json:"frequency" gorm:"default:'once'"`
	SubscriptionDays int            `json:"subscription_days" gorm:"default:1"`
	TotalAmount      float64        `json:"total_amount" gorm:"not null"`
	PaymentStatus    PaymentStatus  `json:"payment_status" gorm:"default:'pending'"`
	PaymentID        *string        `json:"payment_id"`
	DeliveryPersonID *string        `json:"delivery_person_id"`
	DeliveryStatus   DeliveryStatus `json:"delivery_status" gorm:"default:'pending'"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	OrderID      string  `json:"order_id" gorm:"not null;index"`
	SizeID       string  `json:"size_id" gorm:"not null"`
	Quantity     int     `json:"quantity" gorm:"not null"`
	PricePerUnit float64 `json:"price_per_unit" gorm:"not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
