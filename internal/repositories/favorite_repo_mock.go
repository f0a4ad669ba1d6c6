package repositories

import (
	"fmt"
	"sync"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"

	"github.com/google/uuid"
)

// MockFavoriteRepository is an in-memory implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	favorites map[string]models.Favorite // keyed by userID + "/" + productID
	mu        sync.RWMutex
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository.
func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{
		favorites: make(map[string]models.Favorite),
	}
}

func favKey(userID, productID string) string {
	return userID + "/" + productID
}

// GetByUser returns all favorites for a user.
func (r *MockFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var favorites []models.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			favorites = append(favorites, f)
		}
	}
	return favorites, nil
}

// Find returns the favorite for a (user, product) pair.
func (r *MockFavoriteRepository) Find(userID, productID string) (*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fav, ok := r.favorites[favKey(userID, productID)]
	if !ok {
		return nil, fmt.Errorf("favorite for user %s product %s: %w", userID, productID, apperrors.ErrNotFound)
	}
	return &fav, nil
}

// Create stores a new favorite pair.
func (r *MockFavoriteRepository) Create(fav *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	r.favorites[favKey(fav.UserID, fav.ProductID)] = *fav
	return nil
}

// Delete removes the favorite for a (user, product) pair.
func (r *MockFavoriteRepository) Delete(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favKey(userID, productID)
	if _, ok := r.favorites[key]; !ok {
		return fmt.Errorf("favorite for user %s product %s: %w", userID, productID, apperrors.ErrNotFound)
	}
	delete(r.favorites, key)
	return nil
}
