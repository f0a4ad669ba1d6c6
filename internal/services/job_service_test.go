package services_test

import (
	"testing"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock implementation of repositories.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(job *models.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) GetAll() ([]models.Job, error) {
	args := m.Called()
	return args.Get(0).([]models.Job), args.Error(1)
}

func validJob() *models.Job {
	return &models.Job{
		Title:       "Procurement Manager",
		Company:     "FreshTrade",
		Location:    "Pune",
		Type:        "Full-Time",
		Description: "Source produce from partner farms.",
	}
}

func TestJobService_CreateJob(t *testing.T) {
	mockRepo := new(MockJobRepository)
	service := services.NewJobService(mockRepo)

	job := validJob()
	mockRepo.On("Create", job).Return(nil).Once()

	err := service.CreateJob(job)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestJobService_CreateJob_Validation(t *testing.T) {
	mockRepo := new(MockJobRepository)
	service := services.NewJobService(mockRepo)

	missingTitle := validJob()
	missingTitle.Title = ""
	assert.ErrorIs(t, service.CreateJob(missingTitle), apperrors.ErrValidation)

	badType := validJob()
	badType.Type = "Contract"
	assert.ErrorIs(t, service.CreateJob(badType), apperrors.ErrValidation)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestJobService_GetAllJobs(t *testing.T) {
	mockRepo := new(MockJobRepository)
	service := services.NewJobService(mockRepo)

	expected := []models.Job{
		{ID: "j2", Title: "Driver", Company: "FreshTrade", Location: "Pune", Type: "Part-Time"},
		{ID: "j1", Title: "Packer", Company: "FreshTrade", Location: "Pune", Type: "Full-Time"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	jobs, err := service.GetAllJobs()
	assert.NoError(t, err)
	assert.Equal(t, expected, jobs)
	mockRepo.AssertExpectations(t)
}
