package repository

import (
	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByUsername(username string) (*models.Admin, error)
	DeleteAll() error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// DeleteAll clears the admins table. Only used by the dev seeding endpoint.
func (r *adminRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM admins").Error
}
