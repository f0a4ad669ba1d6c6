package handlers

import (
	"errors"
	"log"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/services"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handles HTTP requests for careers-page job postings.
type JobHandler struct {
	service *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the public careers listing.
func (h *JobHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/jobs", h.HandleGetJobs)
}

// RegisterAdminRoutes registers the posting-creation route.
func (h *JobHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/jobs", h.HandleCreateJob)
}

// HandleCreateJob stores a new job posting.
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		log.Printf("Error parsing job request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.CreateJob(&job); err != nil {
		log.Printf("Error posting job: %v", err)
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "All fields are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Job posted successfully",
		"job":     job,
	})
}

// HandleGetJobs lists all postings, newest first.
func (h *JobHandler) HandleGetJobs(c *fiber.Ctx) error {
	jobs, err := h.service.GetAllJobs()
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}
	return c.JSON(jobs)
}
