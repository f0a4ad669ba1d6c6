package handlers

import (
	"bytes"
	"log"

	"freshtrade/internal/catalog"
	"freshtrade/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the back-office aggregates and export over the catalog.
type AdminHandler struct {
	productService *services.ProductService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(productService *services.ProductService) *AdminHandler {
	return &AdminHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the admin catalog routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin/products")
	adminRoutes.Get("/stats", h.HandleGetStats)
	adminRoutes.Get("/export", h.HandleExportCSV)
}

// HandleGetStats returns stock-status counts over the full product list.
// The counts are recomputed on every call, never cached.
func (h *AdminHandler) HandleGetStats(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting products for stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute stats",
		})
	}
	return c.JSON(catalog.ComputeStats(products))
}

// HandleExportCSV streams the currently filtered-and-sorted view as CSV.
// Accepts the same query parameters as the catalog search endpoint.
func (h *AdminHandler) HandleExportCSV(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting products for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not export products",
		})
	}

	view := catalog.Query(products, queryParams(c))

	var buf bytes.Buffer
	if err := catalog.WriteCSV(&buf, view); err != nil {
		log.Printf("Error encoding product CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not export products",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(buf.Bytes())
}
