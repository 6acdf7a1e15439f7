package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type ProductTypeRepository interface {
	Create(productType *models.ProductType) error
	GetByID(id string) (*models.ProductType, error)
	GetAll() ([]models.ProductType, error)
	GetActiveByCategory(categoryID string) ([]models.ProductType, error)
}

type productTypeRepository struct {
	db *gorm.DB
}

func NewProductTypeRepository(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) Create(productType *models.ProductType) error {
	return r.db.Create(productType).Error
}

func (r *productTypeRepository) GetByID(id string) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.First(&productType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &productType, nil
}

func (r *productTypeRepository) GetAll() ([]models.ProductType, error) {
	var productTypes []models.ProductType
	err := r.db.Order("created_at").Find(&productTypes).Error
	return productTypes, err
}

func (r *productTypeRepository) GetActiveByCategory(categoryID string) ([]models.ProductType, error) {
	var productTypes []models.ProductType
	err := r.db.Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("created_at").Find(&productTypes).Error
	return productTypes, err
}
