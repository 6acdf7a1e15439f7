package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"

	"gorm.io/gorm"
)

// DeliveryPersonInput is the full registration payload.
type DeliveryPersonInput struct {
	Name             string   `json:"name" binding:"required"`
	Phone            string   `json:"phone" binding:"required"`
	Password         string   `json:"password" binding:"required"`
	Address          string   `json:"address"`
	AadharNumber     string   `json:"aadhar_number"`
	BikeNumber       string   `json:"bike_number"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	BloodGroup       string   `json:"blood_group"`
	Pincode          string   `json:"pincode" binding:"required"`
	TimeOfWork       string   `json:"time_of_work"`
	SelectedPincodes []string `json:"selected_pincodes"`
}

// AccountService manages delivery-person accounts.
type AccountService interface {
	CreateDeliveryPerson(input *DeliveryPersonInput) (*models.DeliveryPerson, error)
	CreateSimpleDeliveryPerson(name, phone, pincode, password string) (*models.DeliveryPerson, error)
	GetDeliveryPersons() ([]models.DeliveryPerson, error)
	GetDeliveryPerson(id string) (*models.DeliveryPerson, error)
	ResetPassword(id string) (string, error)
}

type accountService struct {
	personRepo repository.DeliveryPersonRepository
	auth       AuthService
}

func NewAccountService(personRepo repository.DeliveryPersonRepository, auth AuthService) AccountService {
	return &accountService{personRepo: personRepo, auth: auth}
}

func (s *accountService) CreateDeliveryPerson(input *DeliveryPersonInput) (*models.DeliveryPerson, error) {
	existing, err := s.personRepo.GetByPhone(input.Phone)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up phone: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	person := &models.DeliveryPerson{
		Name:             input.Name,
		Phone:            input.Phone,
		Address:          input.Address,
		AadharNumber:     input.AadharNumber,
		BikeNumber:       input.BikeNumber,
		Age:              input.Age,
		Gender:           input.Gender,
		BloodGroup:       input.BloodGroup,
		Pincode:          input.Pincode,
		TimeOfWork:       input.TimeOfWork,
		SelectedPincodes: models.StringList(input.SelectedPincodes),
		PasswordHash:     hash,
	}
	if err := s.personRepo.Create(person); err != nil {
		return nil, fmt.Errorf("create delivery person: %w", err)
	}
	return person, nil
}

// CreateSimpleDeliveryPerson keeps the older minimal registration shape,
// filling the profile fields with the same defaults the read path applies to
// legacy records.
func (s *accountService) CreateSimpleDeliveryPerson(name, phone, pincode, password string) (*models.DeliveryPerson, error) {
	return s.CreateDeliveryPerson(&DeliveryPersonInput{
		Name:             name,
		Phone:            phone,
		Password:         password,
		Pincode:          pincode,
		Address:          "Not provided",
		AadharNumber:     "Not provided",
		BikeNumber:       "Not provided",
		Age:              25,
		Gender:           "Not specified",
		BloodGroup:       "Not specified",
		TimeOfWork:       "Not specified",
		SelectedPincodes: []string{pincode},
	})
}

func (s *accountService) GetDeliveryPersons() ([]models.DeliveryPerson, error) {
	return s.personRepo.GetAll()
}

func (s *accountService) GetDeliveryPerson(id string) (*models.DeliveryPerson, error) {
	person, err := s.personRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

// ResetPassword generates a new random password, stores its hash and returns
// the plaintext once for the admin to hand over.
func (s *accountService) ResetPassword(id string) (string, error) {
	newPassword, err := randomPassword()
	if err != nil {
		return "", err
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	affected, err := s.personRepo.UpdatePasswordHash(id, hash)
	if err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return newPassword, nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
