package repository

import (
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(delivery *models.Delivery) error
	GetByID(id string) (*models.Delivery, error)
	GetByIDForPerson(id, deliveryPersonID string) (*models.Delivery, error)
	GetAll() ([]models.Delivery, error)
	GetByDeliveryPerson(deliveryPersonID string) ([]models.Delivery, error)
	Update(delivery *models.Delivery) error
	Reassign(id, newPersonID string) (int64, error)
	Search(startDate, endDate *time.Time, deliveryPersonID, pincode string) ([]models.Delivery, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

func (r *deliveryRepository) GetByID(id string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.First(&delivery, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetByIDForPerson(id, deliveryPersonID string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.Where("id = ? AND delivery_person_id = ?", id, deliveryPersonID).
		First(&delivery).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) GetAll() ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Order("created_at desc").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) GetByDeliveryPerson(deliveryPersonID string) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Where("delivery_person_id = ?", deliveryPersonID).
		Order("delivery_date desc").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepository) Update(delivery *models.Delivery) error {
	return r.db.Save(delivery).Error
}

func (r *deliveryRepository) Reassign(id, newPersonID string) (int64, error) {
	result := r.db.Model(&models.Delivery{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"delivery_person_id": newPersonID,
			"updated_at":         time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func (r *deliveryRepository) Search(startDate, endDate *time.Time, deliveryPersonID, pincode string) ([]models.Delivery, error) {
	query := r.db.Session(&gorm.Session{})
	if startDate != nil && endDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	}
	if deliveryPersonID != "" {
		query = query.Where("delivery_person_id = ?", deliveryPersonID)
	}
	if pincode != "" {
		query = query.Where("customer_pincode = ?", pincode)
	}

	var deliveries []models.Delivery
	err := query.Order("created_at desc").Find(&deliveries).Error
	return deliveries, err
}
