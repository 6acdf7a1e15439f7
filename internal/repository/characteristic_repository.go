package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type CharacteristicRepository interface {
	Create(characteristic *models.Characteristic) error
	GetByID(id string) (*models.Characteristic, error)
	GetAll() ([]models.Characteristic, error)
	GetActiveByProductType(productTypeID string) ([]models.Characteristic, error)
}

type characteristicRepository struct {
	db *gorm.DB
}

func NewCharacteristicRepository(db *gorm.DB) CharacteristicRepository {
	return &characteristicRepository{db: db}
}

func (r *characteristicRepository) Create(characteristic *models.Characteristic) error {
	return r.db.Create(characteristic).Error
}

func (r *characteristicRepository) GetByID(id string) (*models.Characteristic, error) {
	var characteristic models.Characteristic
	err := r.db.First(&characteristic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &characteristic, nil
}

func (r *characteristicRepository) GetAll() ([]models.Characteristic, error) {
	var characteristics []models.Characteristic
	err := r.db.Order("created_at").Find(&characteristics).Error
	return characteristics, err
}

func (r *characteristicRepository) GetActiveByProductType(productTypeID string) ([]models.Characteristic, error) {
	var characteristics []models.Characteristic
	err := r.db.Where("product_type_id = ? AND is_active = ?", productTypeID, true).
		Order("created_at").Find(&characteristics).Error
	return characteristics, err
}
