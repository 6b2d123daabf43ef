package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Stock-api/internal/application/analytics"
	"github.com/jhoicas/Stock-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard de inventario.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve el valor total del stock y el top-5 de productos por
// ganancia FIFO.
// GET /api/dashboard/stats
//
// Un producto cuyo historial no se puede cruzar se excluye del ranking; el
// reporte nunca se aborta por un producto inconsistente.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}
