package services

import (
	"errors"
	"fmt"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/repositories"
)

// FavoriteService manages the server-owned (user, product) favorite relation.
type FavoriteService struct {
	repo        repositories.FavoriteRepository
	productRepo repositories.ProductRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo repositories.FavoriteRepository, productRepo repositories.ProductRepository) *FavoriteService {
	return &FavoriteService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// Toggle flips the favorite state of a product for a user and reports the
// resulting state. Toggling twice restores the original state.
func (s *FavoriteService) Toggle(userID, productID string) (favorited bool, err error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return false, err
	}

	_, err = s.repo.Find(userID, productID)
	switch {
	case err == nil:
		if err := s.repo.Delete(userID, productID); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	case errors.Is(err, apperrors.ErrNotFound):
		fav := &models.Favorite{UserID: userID, ProductID: productID}
		if err := s.repo.Create(fav); err != nil {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}
		return true, nil
	default:
		return false, err
	}
}

// ListProductIDs returns the IDs of the products a user has favorited.
func (s *FavoriteService) ListProductIDs(userID string) ([]string, error) {
	favorites, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID)
	}
	return ids, nil
}
