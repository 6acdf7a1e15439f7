package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type SizeRepository interface {
	Create(size *models.Size) error
	GetByID(id string) (*models.Size, error)
	GetAll() ([]models.Size, error)
	GetActiveByCharacteristic(characteristicID string) ([]models.Size, error)
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(size *models.Size) error {
	return r.db.Create(size).Error
}

func (r *sizeRepository) GetByID(id string) (*models.Size, error) {
	var size models.Size
	err := r.db.First(&size, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) GetAll() ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.Order("created_at").Find(&sizes).Error
	return sizes, err
}

func (r *sizeRepository) GetActiveByCharacteristic(characteristicID string) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.Where("characteristic_id = ? AND is_active = ?", characteristicID, true).
		Order("created_at").Find(&sizes).Error
	return sizes, err
}
