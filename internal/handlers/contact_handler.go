package handlers

import (
	"errors"
	"log"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the public contact-form route.
func (h *ContactHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleCreateMessage)
}

// RegisterAdminRoutes registers the back-office follow-up routes.
func (h *ContactHandler) RegisterAdminRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contact")
	contactRoutes.Get("/", h.HandleGetPending)
	contactRoutes.Put("/:id/contacted", h.HandleMarkContacted)
}

// HandleCreateMessage stores a public contact-form submission.
func (h *ContactHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.CreateMessage(&msg); err != nil {
		log.Printf("Error saving contact message: %v", err)
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "name, email, and message are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message stored successfully",
	})
}

// HandleGetPending lists pending contact messages, newest first.
func (h *ContactHandler) HandleGetPending(c *fiber.Ctx) error {
	messages, err := h.service.ListPending()
	if err != nil {
		log.Printf("Error fetching contact messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}
	return c.JSON(messages)
}

// HandleMarkContacted flips a message from pending to contacted.
func (h *ContactHandler) HandleMarkContacted(c *fiber.Ctx) error {
	messageID := c.Params("id")
	msg, err := h.service.MarkContacted(messageID)
	if err != nil {
		log.Printf("Error marking contact %s as contacted: %v", messageID, err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Contact not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Marked as contacted",
		"contact": msg,
	})
}
