package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"freshtrade/internal/models"
	"freshtrade/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupContactRepo(t *testing.T) *repositories.GORMContactRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	return repositories.NewGORMContactRepository(db)
}

// Pending messages come back newest first regardless of insertion order.
func TestGORMContactRepository_GetPendingNewestFirst(t *testing.T) {
	repo := setupContactRepo(t)
	now := time.Now()

	older := &models.ContactMessage{
		Name:      "Early Buyer",
		Email:     "early@example.com",
		Message:   "First enquiry",
		Status:    models.ContactPending,
		CreatedAt: now.Add(-time.Hour),
	}
	newer := &models.ContactMessage{
		Name:      "Late Buyer",
		Email:     "late@example.com",
		Message:   "Second enquiry",
		Status:    models.ContactPending,
		CreatedAt: now,
	}

	// Insert the older row last so ordering cannot come from insertion order.
	assert.NoError(t, repo.Create(newer))
	assert.NoError(t, repo.Create(older))

	pending, err := repo.GetPending()
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, newer.ID, pending[0].ID)
	assert.Equal(t, older.ID, pending[1].ID)
}

func TestGORMContactRepository_GetPendingExcludesContacted(t *testing.T) {
	repo := setupContactRepo(t)

	msg := &models.ContactMessage{
		Name:    "Buyer",
		Email:   "buyer@example.com",
		Message: "Interested in bulk order",
		Status:  models.ContactPending,
	}
	assert.NoError(t, repo.Create(msg))

	updated, err := repo.UpdateStatus(msg.ID, models.ContactContacted)
	assert.NoError(t, err)
	assert.Equal(t, models.ContactContacted, updated.Status)

	pending, err := repo.GetPending()
	assert.NoError(t, err)
	assert.Empty(t, pending)
}
