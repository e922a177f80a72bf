package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventrack/inventrack-api/internal/application/billing"
	"github.com/inventrack/inventrack-api/internal/application/dto"
)

// InvoiceHandler handles billing requests (protected).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Preview POST /api/invoices/preview. Computes totals without committing.
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/invoices.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/invoices.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/invoices/:id.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	return c.JSON(out)
}

// UpdateStatus PATCH /api/invoices/:id/status.
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/invoices/:id.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Print GET /api/invoices/:id/print. Plain-text rendering.
func (h *InvoiceHandler) Print(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.uc.Print(id)
	if err != nil {
		return fail(c, err)
	}
	if doc == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(doc)
}
