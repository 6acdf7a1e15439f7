package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryPending      DeliveryStatus = "pending"
	DeliveryDelivered    DeliveryStatus = "delivered"
	DeliveryNotDelivered DeliveryStatus = "not_delivered"
)

// NotDeliveredReason is the closed set of failure causes a delivery person can record.
type NotDeliveredReason string

const (
	ReasonCustomerRefuses         NotDeliveredReason = "Customer refuses delivery"
	ReasonDeliveryDelay           NotDeliveredReason = "Delivery delay"
	ReasonBadWeather              NotDeliveredReason = "Bad Weather"
	ReasonCustomerNotReachable    NotDeliveredReason = "Customer not reachable"
	ReasonDamagedItem             NotDeliveredReason = "Damaged or defective item"
	ReasonIncompleteAddress       NotDeliveredReason = "Incomplete or incorrect addresses"
	ReasonIncorrectAddress        NotDeliveredReason = "Incorrect addresses"
	ReasonIncorrectOrder          NotDeliveredReason = "Incorrect order"
	ReasonPaymentProblems         NotDeliveredReason = "Problems with payment"
	ReasonUnrealisticExpectations NotDeliveredReason = "Unrealistic expectations"
)

func ValidNotDeliveredReason(r NotDeliveredReason) bool {
	switch r {
	case ReasonCustomerRefuses, ReasonDeliveryDelay, ReasonBadWeather,
		ReasonCustomerNotReachable, ReasonDamagedItem, ReasonIncompleteAddress,
		ReasonIncorrectAddress, ReasonIncorrectOrder, ReasonPaymentProblems,
		ReasonUnrealisticExpectations:
		return true
	}
	return false
}

// Delivery is an admin-created fulfillment record, independent from Order and
// owned by exactly one delivery person at a time.
type Delivery struct {
	ID               string              `json:"id" gorm:"primaryKey"`
	CustomerName     string              `json:"customer_name" gorm:"not null"`
	CustomerAddress  string              `json:"customer_address" gorm:"not null"`
	CustomerPhone    string              `json:"customer_phone" gorm:"not null"`
	CustomerWhatsApp string              `json:"customer_whatsapp"`
	CustomerPincode  string              `json:"customer_pincode" gorm:"index"`
	ProductName      string              `json:"product_name" gorm:"not null"`
	ProductQuantity  string              `json:"product_quantity"`
	DeliveryDate     string              `json:"delivery_date" gorm:"not null;index"` // YYYY-MM-DD
	DeliveryPersonID string              `json:"delivery_person_id" gorm:"not null;index"`
	Status           DeliveryStatus      `json:"status" gorm:"default:'pending'"`
	Reason           *NotDeliveredReason `json:"reason"`
	Comments         *string             `json:"comments"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
