package repositories

import "freshtrade/internal/models"

// ContactRepository defines the interface for contact-message data access.
type ContactRepository interface {
	Create(msg *models.ContactMessage) error
	GetPending() ([]models.ContactMessage, error)
	GetByID(id string) (*models.ContactMessage, error)
	UpdateStatus(id, status string) (*models.ContactMessage, error)
}
