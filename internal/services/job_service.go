package services

import (
	"fmt"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// JobService handles business logic for careers-page job postings.
type JobService struct {
	repo     repositories.JobRepository
	validate *validator.Validate
}

// NewJobService creates a new JobService.
func NewJobService(repo repositories.JobRepository) *JobService {
	return &JobService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateJob validates and stores a new posting. All fields are required and
// the employment type must be one of the three accepted values.
func (s *JobService) CreateJob(job *models.Job) error {
	if err := s.validate.Struct(job); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.Create(job)
}

// GetAllJobs returns every posting, newest first.
func (s *JobService) GetAllJobs() ([]models.Job, error) {
	return s.repo.GetAll()
}
