package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type DeliveryPersonRepository interface {
	Create(person *models.DeliveryPerson) error
	GetByID(id string) (*models.DeliveryPerson, error)
	GetByPhone(phone string) (*models.DeliveryPerson, error)
	GetAll() ([]models.DeliveryPerson, error)
	UpdatePasswordHash(id, passwordHash string) (int64, error)
}

type deliveryPersonRepository struct {
	db *gorm.DB
}

func NewDeliveryPersonRepository(db *gorm.DB) DeliveryPersonRepository {
	return &deliveryPersonRepository{db: db}
}

func (r *deliveryPersonRepository) Create(person *models.DeliveryPerson) error {
	return r.db.Create(person).Error
}

func (r *deliveryPersonRepository) GetByID(id string) (*models.DeliveryPerson, error) {
	var person models.DeliveryPerson
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	person.Normalize()
	return &person, nil
}

func (r *deliveryPersonRepository) GetByPhone(phone string) (*models.DeliveryPerson, error) {
	var person models.DeliveryPerson
	err := r.db.First(&person, "phone = ?", phone).Error
	if err != nil {
		return nil, err
	}
	person.Normalize()
	return &person, nil
}

func (r *deliveryPersonRepository) GetAll() ([]models.DeliveryPerson, error) {
	var persons []models.DeliveryPerson
	err := r.db.Order("created_at").Find(&persons).Error
	if err != nil {
		return nil, err
	}
	for i := range persons {
		persons[i].Normalize()
	}
	return persons, nil
}

func (r *deliveryPersonRepository) UpdatePasswordHash(id, passwordHash string) (int64, error) {
	result := r.db.Model(&models.DeliveryPerson{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	return result.RowsAffected, result.Error
}
