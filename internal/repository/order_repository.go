package repository

import (
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByCustomerID(customerID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Search(startDate, endDate *time.Time, deliveryPersonID string) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Search(startDate, endDate *time.Time, deliveryPersonID string) ([]models.Order, error) {
	query := r.db.Preload("Items")
	if startDate != nil && endDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	}
	if deliveryPersonID != "" {
		query = query.Where("delivery_person_id = ?", deliveryPersonID)
	}

	var orders []models.Order
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}
