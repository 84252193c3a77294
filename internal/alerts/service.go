package alerts

import (
	"errors"
	"strings"
	"time"

	"github.com/parkguard-dev/parkguard/internal/models"
	"gorm.io/gorm"
)

// MaxListAlerts caps the list response so the endpoint stays bounded
// without pagination.
const MaxListAlerts = 300

// CreateInput carries the guard-entered fields of a new alert.
type CreateInput struct {
	Plate    string
	Property string
	Zone     string
	Reason   string
	Urgency  string
	Note     string
}

// UpdatePatch carries the mutable fields of a PATCH. Nil pointers mean
// "not present"; an empty string owner response is still a response.
type UpdatePatch struct {
	Status        *string
	OwnerResponse *string
	RespondedAt   *time.Time
	Revision      *uint
}

// Service validates input, applies the status transition rules and
// performs all alert reads and writes against the store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(input CreateInput) (*models.Alert, error) {
	plate := NormalizePlate(input.Plate)
	property := strings.TrimSpace(input.Property)
	zone := strings.TrimSpace(input.Zone)
	reason := strings.TrimSpace(input.Reason)

	if plate == "" || property == "" || zone == "" || reason == "" {
		return nil, &ValidationError{Message: "plate, property, zone, reason are required"}
	}

	urgency := strings.TrimSpace(input.Urgency)

	if urgency == "" {
		urgency = UrgencyNormal
	}

	if !ValidUrgency(urgency) {
		return nil, &ValidationError{Message: "urgency must be Normal or High"}
	}

	alert := models.Alert{
		Plate:    plate,
		Property: property,
		Zone:     zone,
		Reason:   reason,
		Urgency:  urgency,
		Note:     strings.TrimSpace(input.Note),
		Status:   StatusSent,
		Revision: 1,
	}

	if err := s.db.Create(&alert).Error; err != nil {
		return nil, &StoreError{Op: "create", Err: err}
	}

	return &alert, nil
}

func (s *Service) List() ([]models.Alert, error) {
	var alerts []models.Alert

	if err := s.db.Order("created_at DESC").Limit(MaxListAlerts).Find(&alerts).Error; err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	return alerts, nil
}

func (s *Service) Update(id uint, patch UpdatePatch) (*models.Alert, error) {
	if patch.Status != nil && !ValidStatus(*patch.Status) {
		return nil, &ValidationError{Message: "status must be one of sent, viewed, responded, escalated, resolved"}
	}

	var alert models.Alert

	if err := s.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &StoreError{Op: "update", Err: err}
	}

	if patch.Revision != nil && *patch.Revision != alert.Revision {
		return nil, &ConflictError{ID: id, Expected: *patch.Revision, Actual: alert.Revision}
	}

	alert.Status = ResolveStatus(alert.Status, patch)

	if patch.OwnerResponse != nil {
		response := *patch.OwnerResponse
		alert.OwnerResponse = &response

		respondedAt := time.Now()
		if patch.RespondedAt != nil {
			respondedAt = *patch.RespondedAt
		}
		alert.RespondedAt = &respondedAt
	}

	alert.Revision++

	if err := s.db.Save(&alert).Error; err != nil {
		return nil, &StoreError{Op: "update", Err: err}
	}

	return &alert, nil
}

func (s *Service) Delete(id uint) error {
	var alert models.Alert

	if err := s.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{ID: id}
		}
		return &StoreError{Op: "delete", Err: err}
	}

	if err := s.db.Delete(&alert).Error; err != nil {
		return &StoreError{Op: "delete", Err: err}
	}

	return nil
}
