package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventrack/inventrack-api/internal/application/auth"
	"github.com/inventrack/inventrack-api/internal/application/dto"
)

// AuthHandler handles login and identity lookups.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Me GET /api/auth/me (protected).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
	}
	out, err := h.uc.Me(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
