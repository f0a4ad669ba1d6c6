package services

import (
	"encoding/json"
	"fmt"
	"log"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/repositories"
	"freshtrade/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// ContactService handles business logic for contact-form submissions and the
// back-office follow-up workflow.
type ContactService struct {
	repo     repositories.ContactRepository
	mqClient *rabbitmq.Client
	validate *validator.Validate
}

// NewContactService creates a new ContactService. The RabbitMQ client is
// optional; a nil client skips event publication.
func NewContactService(repo repositories.ContactRepository, mqClient *rabbitmq.Client) *ContactService {
	return &ContactService{
		repo:     repo,
		mqClient: mqClient,
		validate: validator.New(),
	}
}

// CreateMessage validates and stores a public contact submission. The status
// is always "pending" on creation regardless of what the caller sends. A
// contact-received event is published so the back office gets notified;
// publication failures are logged, never surfaced to the submitter.
func (s *ContactService) CreateMessage(msg *models.ContactMessage) error {
	msg.Status = models.ContactPending
	if err := s.validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.repo.Create(msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"messageID": msg.ID,
			"name":      msg.Name,
			"email":     msg.Email,
			"company":   msg.Company,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal contact event to JSON: %v", err)
		} else if err := s.mqClient.PublishContactEvent(body); err != nil {
			log.Printf("Warning: Failed to publish contact event for message %s: %v", msg.ID, err)
		}
	}

	return nil
}

// ListPending returns pending messages, newest first. Messages already marked
// contacted drop out of this listing.
func (s *ContactService) ListPending() ([]models.ContactMessage, error) {
	return s.repo.GetPending()
}

// MarkContacted flips a message from pending to contacted. The transition is
// one-directional; marking an already-contacted message again is a no-op that
// returns the stored row.
func (s *ContactService) MarkContacted(id string) (*models.ContactMessage, error) {
	msg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if msg.Status == models.ContactContacted {
		return msg, nil
	}
	return s.repo.UpdateStatus(id, models.ContactContacted)
}
