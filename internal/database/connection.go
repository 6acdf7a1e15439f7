package database

import (
	"fmt"

	"github.com/bosesayankolkata/dairyexpress/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.DeliveryPerson{},
		&models.Category{},
		&models.ProductType{},
		&models.Characteristic{},
		&models.Size{},
		&models.PinCode{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
	)
}
