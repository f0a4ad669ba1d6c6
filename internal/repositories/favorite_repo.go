package repositories

import "freshtrade/internal/models"

// FavoriteRepository defines the interface for favorite data access.
// A favorite is a (user, product) pair; the pair is unique per user.
type FavoriteRepository interface {
	GetByUser(userID string) ([]models.Favorite, error)
	Find(userID, productID string) (*models.Favorite, error)
	Create(fav *models.Favorite) error
	Delete(userID, productID string) error
}
