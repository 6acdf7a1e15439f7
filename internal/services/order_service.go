package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/conversation"
	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService backs both the admin order listing and the conversation
// engine's confirm transition.
type OrderService interface {
	conversation.Orders

	GetAllOrders() ([]models.Order, error)
	GetAllCustomers() ([]models.Customer, error)
	Search(startDate, endDate *time.Time, deliveryPersonID string) ([]models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, customerRepo: customerRepo}
}

// PlaceOrder upserts the customer by WhatsApp number and creates a
// single-item order from the accumulated selections.
func (s *orderService) PlaceOrder(ctx context.Context, phoneNumber string, sel conversation.Selections) (*models.Order, error) {
	customer, err := s.customerRepo.GetByWhatsAppNumber(phoneNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = &models.Customer{
			WhatsAppNumber: phoneNumber,
			Name:           sel.CustomerName,
			Pincode:        sel.Pincode,
			Address:        sel.Address,
		}
		if err := s.customerRepo.Create(customer); err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}

	frequency := models.FrequencyOnce
	subscriptionDays := 1
	if sel.Frequency != nil {
		frequency = models.OrderFrequency(sel.Frequency.Type)
		subscriptionDays = sel.Frequency.Days
	}

	order := &models.Order{
		OrderNumber: GenerateOrderNumber(time.Now().UTC()),
		CustomerID:  customer.ID,
		Items: []models.OrderItem{{
			SizeID:       sel.SizeID,
			Quantity:     sel.Quantity,
			PricePerUnit: sel.SizePrice,
		}},
		DeliveryDate:     time.Now().UTC().Format("2006-01-02"),
		DeliveryTimeSlot: sel.TimeSlot,
		Frequency:        frequency,
		SubscriptionDays: subscriptionDays,
		TotalAmount:      sel.TotalAmount,
		PaymentStatus:    models.PaymentPending,
		DeliveryStatus:   models.DeliveryPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.customerRepo.IncrementOrderCount(customer.ID); err != nil {
		return nil, fmt.Errorf("increment order count: %w", err)
	}

	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *orderService) Search(startDate, endDate *time.Time, deliveryPersonID string) ([]models.Order, error) {
	return s.orderRepo.Search(startDate, endDate, deliveryPersonID)
}

// GenerateOrderNumber builds a timestamped order number with a random suffix
// so that two confirms within the same second cannot collide.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%s-%s", now.Format("20060102150405"), uuid.NewString()[:6])
}
