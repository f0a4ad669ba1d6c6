package handlers

import (
	"errors"
	"log"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for per-user product favorites.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes. These require authentication;
// the user is taken from the token claims, never the request body.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favRoutes := router.Group("/favorites")
	favRoutes.Get("/", h.HandleGetFavorites)
	favRoutes.Post("/:productId/toggle", h.HandleToggleFavorite)
}

// HandleGetFavorites returns the product IDs the current user has favorited.
func (h *FavoriteHandler) HandleGetFavorites(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	ids, err := h.service.ListProductIDs(userID)
	if err != nil {
		log.Printf("Error getting favorites for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve favorites",
		})
	}
	return c.JSON(fiber.Map{
		"productIds": ids,
	})
}

// HandleToggleFavorite flips the favorite state of a product for the current
// user and reports the resulting state.
func (h *FavoriteHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	productID := c.Params("productId")

	favorited, err := h.service.Toggle(userID, productID)
	if err != nil {
		log.Printf("Error toggling favorite %s for user %s: %v", productID, userID, err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not toggle favorite",
		})
	}

	return c.JSON(fiber.Map{
		"productId": productID,
		"favorited": favorited,
	})
}
