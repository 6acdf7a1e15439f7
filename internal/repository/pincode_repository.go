package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type PinCodeRepository interface {
	Create(pincode *models.PinCode) error
	GetByID(id string) (*models.PinCode, error)
	GetByPincode(pincode string) (*models.PinCode, error)
	GetServiceable(pincode string) (*models.PinCode, error)
	GetAll() ([]models.PinCode, error)
	Update(pincode *models.PinCode) error
}

type pinCodeRepository struct {
	db *gorm.DB
}

func NewPinCodeRepository(db *gorm.DB) PinCodeRepository {
	return &pinCodeRepository{db: db}
}

func (r *pinCodeRepository) Create(pincode *models.PinCode) error {
	return r.db.Create(pincode).Error
}

func (r *pinCodeRepository) GetByID(id string) (*models.PinCode, error) {
	var pc models.PinCode
	err := r.db.First(&pc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *pinCodeRepository) GetByPincode(pincode string) (*models.PinCode, error) {
	var pc models.PinCode
	err := r.db.First(&pc, "pincode = ?", pincode).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *pinCodeRepository) GetServiceable(pincode string) (*models.PinCode, error) {
	var pc models.PinCode
	err := r.db.Where("pincode = ? AND is_serviceable = ?", pincode, true).First(&pc).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *pinCodeRepository) GetAll() ([]models.PinCode, error) {
	var pincodes []models.PinCode
	err := r.db.Order("created_at").Find(&pincodes).Error
	return pincodes, err
}

func (r *pinCodeRepository) Update(pincode *models.PinCode) error {
	return r.db.Save(pincode).Error
}
