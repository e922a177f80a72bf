package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inventrack/inventrack-api/internal/application/analytics"
)

// DashboardHandler handles dashboard and report requests (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SalesReport GET /api/reports/sales. Optional ?days= window for the daily
// series, default 7, capped at 90.
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days > 90 {
		days = 90
	}
	out, err := h.uc.GetSalesReport(time.Now(), days)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
