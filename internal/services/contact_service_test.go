package services_test

import (
	"testing"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/repositories"
	"freshtrade/internal/services"

	"github.com/stretchr/testify/assert"
)

func validMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "Buyer",
		Email:   "buyer@example.com",
		Message: "Interested in bulk order",
	}
}

func TestContactService_CreateMessage(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil) // nil MQ client skips publishing

	msg := validMessage()
	err := service.CreateMessage(msg)

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, models.ContactPending, msg.Status)
}

func TestContactService_CreateMessage_StatusAlwaysPending(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil)

	// A caller-supplied status is ignored on creation.
	msg := validMessage()
	msg.Status = models.ContactContacted
	err := service.CreateMessage(msg)

	assert.NoError(t, err)
	assert.Equal(t, models.ContactPending, msg.Status)
}

func TestContactService_CreateMessage_RequiredFields(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil)

	missingEmail := validMessage()
	missingEmail.Email = ""
	assert.ErrorIs(t, service.CreateMessage(missingEmail), apperrors.ErrValidation)

	missingMessage := validMessage()
	missingMessage.Message = ""
	assert.ErrorIs(t, service.CreateMessage(missingMessage), apperrors.ErrValidation)

	// Company and phone are optional.
	optional := validMessage()
	optional.Company = "Acme Produce"
	optional.Phone = "+91 98765 43210"
	assert.NoError(t, service.CreateMessage(optional))
}

func TestContactService_MarkContacted_RemovesFromPending(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil)

	msg := validMessage()
	assert.NoError(t, service.CreateMessage(msg))

	pending, err := service.ListPending()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	updated, err := service.MarkContacted(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ContactContacted, updated.Status)

	pending, err = service.ListPending()
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

func TestContactService_MarkContacted_IsOneDirectional(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil)

	msg := validMessage()
	assert.NoError(t, service.CreateMessage(msg))

	_, err := service.MarkContacted(msg.ID)
	assert.NoError(t, err)

	// Marking again keeps the message contacted; there is no reversal.
	updated, err := service.MarkContacted(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ContactContacted, updated.Status)
}

func TestContactService_MarkContacted_NotFound(t *testing.T) {
	repo := repositories.NewMockContactRepository()
	service := services.NewContactService(repo, nil)

	updated, err := service.MarkContacted("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, updated)
}
