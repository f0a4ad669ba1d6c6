package repositories

import (
	"fmt"
	"sort"
	"sync"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	messages map[string]models.ContactMessage
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		messages: make(map[string]models.ContactMessage),
	}
}

// Create adds a new contact message.
func (r *MockContactRepository) Create(msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	r.messages[msg.ID] = *msg
	return nil
}

// GetPending returns pending messages, newest first.
func (r *MockContactRepository) GetPending() ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := make([]models.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		if m.Status == models.ContactPending {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	return pending, nil
}

// GetByID returns a contact message by its ID.
func (r *MockContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("contact message with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &msg, nil
}

// UpdateStatus sets the status of a stored message.
func (r *MockContactRepository) UpdateStatus(id, status string) (*models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("contact message with ID %s: %w", id, apperrors.ErrNotFound)
	}
	msg.Status = status
	r.messages[id] = msg
	return &msg, nil
}
