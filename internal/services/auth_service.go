package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	UserTypeAdmin          = "admin"
	UserTypeDeliveryPerson = "delivery_person"

	tokenExpiry = 24 * time.Hour
)

// LoginResult carries the issued token plus the caller-facing identity data.
type LoginResult struct {
	AccessToken string                 `json:"access_token"`
	TokenType   string                 `json:"token_type"`
	UserType    string                 `json:"user_type"`
	UserData    map[string]interface{} `json:"user_data"`
}

// Identity is the authenticated principal extracted from a bearer token.
type Identity struct {
	UserID   string
	UserType string
}

type AuthService interface {
	Login(username, password string) (*LoginResult, error)
	ParseToken(token string) (*Identity, error)
	IssueToken(userID, userType string) (string, error)
	HashPassword(password string) (string, error)
	SeedAdmin(username, password string) (*models.Admin, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	personRepo repository.DeliveryPersonRepository
	jwtSecret  []byte
}

func NewAuthService(adminRepo repository.AdminRepository, personRepo repository.DeliveryPersonRepository, jwtSecret string) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		personRepo: personRepo,
		jwtSecret:  []byte(jwtSecret),
	}
}

// Login tries admin credentials by username first, then delivery person
// credentials with the phone number as username.
func (s *authService) Login(username, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up admin: %w", err)
	}
	if admin != nil && checkPassword(password, admin.PasswordHash) {
		token, err := s.IssueToken(admin.ID, UserTypeAdmin)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			AccessToken: token,
			TokenType:   "bearer",
			UserType:    UserTypeAdmin,
			UserData: map[string]interface{}{
				"id":       admin.ID,
				"username": admin.Username,
			},
		}, nil
	}

	person, err := s.personRepo.GetByPhone(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up delivery person: %w", err)
	}
	if person != nil && checkPassword(password, person.PasswordHash) {
		token, err := s.IssueToken(person.ID, UserTypeDeliveryPerson)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			AccessToken: token,
			TokenType:   "bearer",
			UserType:    UserTypeDeliveryPerson,
			UserData: map[string]interface{}{
				"id":      person.ID,
				"name":    person.Name,
				"phone":   person.Phone,
				"pincode": person.Pincode,
			},
		}, nil
	}

	return nil, ErrInvalidCredentials
}

func (s *authService) IssueToken(userID, userType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":       userID,
		"user_type": userType,
		"exp":       time.Now().Add(tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	userType, _ := claims["user_type"].(string)
	if sub == "" {
		return nil, ErrInvalidCredentials
	}
	return &Identity{UserID: sub, UserType: userType}, nil
}

func (s *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// SeedAdmin recreates the admin account. Dev seeding only.
func (s *authService) SeedAdmin(username, password string) (*models.Admin, error) {
	if err := s.adminRepo.DeleteAll(); err != nil {
		return nil, fmt.Errorf("clear admins: %w", err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
