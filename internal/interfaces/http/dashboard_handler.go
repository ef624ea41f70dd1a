package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/quotation-pro/internal/application/analytics"
)

// DashboardHandler maneja el resumen de actividad (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve conteos, monto cotizado acumulado y variación mensual.
// GET /api/dashboard/summary
//
// No requiere parámetros; los rangos de mes se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}
