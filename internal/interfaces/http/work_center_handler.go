package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// WorkCenterHandler maneja los centros de trabajo.
type WorkCenterHandler struct {
	wcUC *usecase.WorkCenterUseCase
}

// NewWorkCenterHandler construye el handler.
func NewWorkCenterHandler(wcUC *usecase.WorkCenterUseCase) *WorkCenterHandler {
	return &WorkCenterHandler{wcUC: wcUC}
}

// Create maneja POST /api/work-centers
// @Summary Crear centro de trabajo
// @Tags work-centers
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkCenterRequest true "Centro"
// @Success 201 {object} dto.WorkCenterResponse
// @Router /api/work-centers [post]
func (h *WorkCenterHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	wc, err := h.wcUC.Create(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wc)
}

// List maneja GET /api/work-centers
// @Summary Listar centros con su carga de órdenes activas
// @Tags work-centers
// @Produce json
// @Success 200 {array} dto.WorkCenterResponse
// @Router /api/work-centers [get]
func (h *WorkCenterHandler) List(c *fiber.Ctx) error {
	centers, err := h.wcUC.List(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(centers)
}

// UpdateStatus maneja PATCH /api/work-centers/:id/status
// @Summary Cambiar estado del centro (AVAILABLE/BUSY/MAINTENANCE)
// @Tags work-centers
// @Accept json
// @Param id path string true "ID del centro"
// @Param request body dto.UpdateWorkCenterStatusRequest true "Nuevo estado"
// @Success 204
// @Router /api/work-centers/{id}/status [patch]
func (h *WorkCenterHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateWorkCenterStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	if err := h.wcUC.UpdateStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
