package repositories

import (
	"errors"
	"fmt"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// Create stores a new contact message.
func (r *GORMContactRepository) Create(msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetPending retrieves pending contact messages, newest first.
func (r *GORMContactRepository) GetPending() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.Where("status = ?", models.ContactPending).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending contact messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a single contact message by its ID.
func (r *GORMContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact message with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact message by ID %s: %w", id, err)
	}
	return &msg, nil
}

// UpdateStatus sets the status of a contact message and returns the updated row.
func (r *GORMContactRepository) UpdateStatus(id, status string) (*models.ContactMessage, error) {
	msg, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	msg.Status = status
	if err := r.db.Model(msg).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact message %s: %w", id, err)
	}
	return msg, nil
}
