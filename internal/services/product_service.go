package services

import (
	"fmt"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and creates a new product. The stock status
// defaults to "In Stock" when unset.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.StockStatus == "" {
		product.StockStatus = models.StockInStock
	}
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update: only fields supplied in the patch
// overwrite the stored entity, everything else keeps its prior value. Returns
// the updated product.
func (s *ProductService) UpdateProduct(id string, patch models.ProductPatch) (*models.Product, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID. Hard delete, no cascade since no
// entity references another.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
