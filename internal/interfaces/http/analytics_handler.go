package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// AnalyticsHandler expone el tablero de analítica.
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// Dashboard maneja GET /api/analytics/dashboard
// @Summary Resumen: órdenes por estado, valor de inventario, desempeño reciente
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardStatsDTO
// @Router /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analyticsUC.GetDashboardStats(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(stats)
}
