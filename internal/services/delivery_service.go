package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"

	"gorm.io/gorm"
)

// DeliveryStats aggregates a delivery person's workload. A delivery counts as
// completed once it has a terminal status, delivered or not_delivered.
type DeliveryStats struct {
	TotalDeliveries     int                  `json:"total_deliveries"`
	CompletedDeliveries int                  `json:"completed_deliveries"`
	PendingDeliveries   int                  `json:"pending_deliveries"`
	DailyStats          map[string]DailyStat `json:"daily_stats"`
}

type DailyStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// StatusUpdate is the payload a delivery person submits for one delivery.
type StatusUpdate struct {
	Status   models.DeliveryStatus      `json:"status" binding:"required"`
	Reason   *models.NotDeliveredReason `json:"reason"`
	Comments *string                    `json:"comments"`
}

type DeliveryService interface {
	CreateDelivery(delivery *models.Delivery) error
	GetAllDeliveries() ([]models.Delivery, error)
	GetDeliveriesForPerson(personID string) ([]models.Delivery, error)
	Reassign(deliveryID, newPersonID string) error
	UpdateStatus(deliveryID, personID string, update *StatusUpdate) error
	Stats(personID string) (*DeliveryStats, error)
	Search(startDate, endDate *time.Time, deliveryPersonID, pincode string) ([]models.Delivery, error)
}

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	personRepo   repository.DeliveryPersonRepository
}

func NewDeliveryService(deliveryRepo repository.DeliveryRepository, personRepo repository.DeliveryPersonRepository) DeliveryService {
	return &deliveryService{deliveryRepo: deliveryRepo, personRepo: personRepo}
}

func (s *deliveryService) CreateDelivery(delivery *models.Delivery) error {
	if _, err := s.personRepo.GetByID(delivery.DeliveryPersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("delivery person: %w", ErrNotFound)
		}
		return err
	}
	if delivery.Status == "" {
		delivery.Status = models.DeliveryPending
	}
	return s.deliveryRepo.Create(delivery)
}

func (s *deliveryService) GetAllDeliveries() ([]models.Delivery, error) {
	return s.deliveryRepo.GetAll()
}

func (s *deliveryService) GetDeliveriesForPerson(personID string) ([]models.Delivery, error) {
	return s.deliveryRepo.GetByDeliveryPerson(personID)
}

func (s *deliveryService) Reassign(deliveryID, newPersonID string) error {
	if _, err := s.personRepo.GetByID(newPersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("delivery person: %w", ErrNotFound)
		}
		return err
	}

	affected, err := s.deliveryRepo.Reassign(deliveryID, newPersonID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("delivery: %w", ErrNotFound)
	}
	return nil
}

// UpdateStatus is scoped to the owning delivery person; a person cannot
// update someone else's delivery.
func (s *deliveryService) UpdateStatus(deliveryID, personID string, update *StatusUpdate) error {
	delivery, err := s.deliveryRepo.GetByIDForPerson(deliveryID, personID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if update.Reason != nil && !models.ValidNotDeliveredReason(*update.Reason) {
		return ErrInvalidReason
	}

	delivery.Status = update.Status
	if update.Reason != nil {
		delivery.Reason = update.Reason
	}
	if update.Comments != nil {
		delivery.Comments = update.Comments
	}
	delivery.UpdatedAt = time.Now().UTC()

	return s.deliveryRepo.Update(delivery)
}

func (s *deliveryService) Stats(personID string) (*DeliveryStats, error) {
	deliveries, err := s.deliveryRepo.GetByDeliveryPerson(personID)
	if err != nil {
		return nil, err
	}

	stats := &DeliveryStats{DailyStats: make(map[string]DailyStat)}
	for _, d := range deliveries {
		stats.TotalDeliveries++

		day := stats.DailyStats[d.DeliveryDate]
		day.Total++
		if d.Status == models.DeliveryDelivered || d.Status == models.DeliveryNotDelivered {
			stats.CompletedDeliveries++
			day.Completed++
		} else {
			day.Pending++
		}
		stats.DailyStats[d.DeliveryDate] = day
	}
	stats.PendingDeliveries = stats.TotalDeliveries - stats.CompletedDeliveries

	return stats, nil
}

func (s *deliveryService) Search(startDate, endDate *time.Time, deliveryPersonID, pincode string) ([]models.Delivery, error) {
	return s.deliveryRepo.Search(startDate, endDate, deliveryPersonID, pincode)
}
