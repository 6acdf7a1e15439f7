package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bosesayankolkata/dairyexpress/internal/conversation"
	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"

	"gorm.io/gorm"
)

// CatalogService owns the category/product-type/characteristic/size chain and
// the pincode table. It doubles as the conversation engine's read-only Catalog.
type CatalogService interface {
	conversation.Catalog

	CreateCategory(category *models.Category) error
	GetCategories() ([]models.Category, error)
	UpdateCategory(id string, update *models.Category) error

	CreateProductType(productType *models.ProductType) error
	GetProductTypes() ([]models.ProductType, error)

	CreateCharacteristic(characteristic *models.Characteristic) error
	GetCharacteristics() ([]models.Characteristic, error)

	CreateSize(size *models.Size) error
	GetSizes() ([]models.Size, error)

	CreatePinCode(pincode *models.PinCode) error
	GetPinCodes() ([]models.PinCode, error)
	UpdatePinCode(id string, update *models.PinCode) error
}

type catalogService struct {
	categoryRepo       repository.CategoryRepository
	productTypeRepo    repository.ProductTypeRepository
	characteristicRepo repository.CharacteristicRepository
	sizeRepo           repository.SizeRepository
	pincodeRepo        repository.PinCodeRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productTypeRepo repository.ProductTypeRepository,
	characteristicRepo repository.CharacteristicRepository,
	sizeRepo repository.SizeRepository,
	pincodeRepo repository.PinCodeRepository,
) CatalogService {
	return &catalogService{
		categoryRepo:       categoryRepo,
		productTypeRepo:    productTypeRepo,
		characteristicRepo: characteristicRepo,
		sizeRepo:           sizeRepo,
		pincodeRepo:        pincodeRepo,
	}
}

// conversation.Catalog implementation

func (s *catalogService) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetActive()
}

func (s *catalogService) ActiveProductTypes(ctx context.Context, categoryID string) ([]models.ProductType, error) {
	return s.productTypeRepo.GetActiveByCategory(categoryID)
}

func (s *catalogService) ActiveCharacteristics(ctx context.Context, productTypeID string) ([]models.Characteristic, error) {
	return s.characteristicRepo.GetActiveByProductType(productTypeID)
}

func (s *catalogService) ActiveSizes(ctx context.Context, characteristicID string) ([]models.Size, error) {
	return s.sizeRepo.GetActiveByCharacteristic(characteristicID)
}

func (s *catalogService) ServiceablePincode(ctx context.Context, pincode string) (*models.PinCode, error) {
	pc, err := s.pincodeRepo.GetServiceable(pincode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, conversation.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return pc, nil
}

// Admin CRUD

func (s *catalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) UpdateCategory(id string, update *models.Category) error {
	category, err := s.categoryRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	category.Name = update.Name
	category.Description = update.Description
	category.IsActive = update.IsActive
	return s.categoryRepo.Update(category)
}

func (s *catalogService) CreateProductType(productType *models.ProductType) error {
	if _, err := s.categoryRepo.GetByID(productType.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category: %w", ErrNotFound)
		}
		return err
	}
	return s.productTypeRepo.Create(productType)
}

func (s *catalogService) GetProductTypes() ([]models.ProductType, error) {
	return s.productTypeRepo.GetAll()
}

func (s *catalogService) CreateCharacteristic(characteristic *models.Characteristic) error {
	if _, err := s.productTypeRepo.GetByID(characteristic.ProductTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product type: %w", ErrNotFound)
		}
		return err
	}
	return s.characteristicRepo.Create(characteristic)
}

func (s *catalogService) GetCharacteristics() ([]models.Characteristic, error) {
	return s.characteristicRepo.GetAll()
}

func (s *catalogService) CreateSize(size *models.Size) error {
	if _, err := s.characteristicRepo.GetByID(size.CharacteristicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("characteristic: %w", ErrNotFound)
		}
		return err
	}
	return s.sizeRepo.Create(size)
}

func (s *catalogService) GetSizes() ([]models.Size, error) {
	return s.sizeRepo.GetAll()
}

func (s *catalogService) CreatePinCode(pincode *models.PinCode) error {
	existing, err := s.pincodeRepo.GetByPincode(pincode.Pincode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicatePincode
	}
	return s.pincodeRepo.Create(pincode)
}

func (s *catalogService) GetPinCodes() ([]models.PinCode, error) {
	return s.pincodeRepo.GetAll()
}

func (s *catalogService) UpdatePinCode(id string, update *models.PinCode) error {
	pc, err := s.pincodeRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	pc.Pincode = update.Pincode
	pc.AreaName = update.AreaName
	pc.IsServiceable = update.IsServiceable
	if update.AvailableTimeSlots != nil {
		pc.AvailableTimeSlots = update.AvailableTimeSlots
	}
	pc.DeliveryCharge = update.DeliveryCharge
	return s.pincodeRepo.Update(pc)
}
