package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/application/inventory"
)

// InventoryHandler handles stock movement requests (protected).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement POST /api/inventory/movements.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements GET /api/inventory/movements. Optional ?product_id= filter.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.Query("product_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// LowStock GET /api/inventory/low-stock.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
