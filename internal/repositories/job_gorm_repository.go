package repositories

import (
	"fmt"

	"freshtrade/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{
		db: db,
	}
}

// Create stores a new job posting.
func (r *GORMJobRepository) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetAll retrieves all job postings, newest first.
func (r *GORMJobRepository) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("posted_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all jobs: %w", err)
	}
	return jobs, nil
}
