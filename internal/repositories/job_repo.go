package repositories

import "freshtrade/internal/models"

// JobRepository defines the interface for job-posting data access.
type JobRepository interface {
	Create(job *models.Job) error
	GetAll() ([]models.Job, error)
}
