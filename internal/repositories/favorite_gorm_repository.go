package repositories

import (
	"errors"
	"fmt"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetByUser retrieves all favorites belonging to a user.
func (r *GORMFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}

// Find retrieves the favorite for a (user, product) pair.
func (r *GORMFavoriteRepository) Find(userID, productID string) (*models.Favorite, error) {
	var fav models.Favorite
	if err := r.db.First(&fav, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite for user %s product %s: %w", userID, productID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &fav, nil
}

// Create stores a new favorite pair.
func (r *GORMFavoriteRepository) Create(fav *models.Favorite) error {
	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	if err := r.db.Create(fav).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes the favorite for a (user, product) pair.
func (r *GORMFavoriteRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite for user %s product %s: %w", userID, productID, apperrors.ErrNotFound)
	}
	return nil
}
