package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
)

// InventoryHandler maneja ajustes manuales de stock.
type InventoryHandler struct {
	adjustUC *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC}
}

// Adjust maneja POST /api/inventory/adjustments
// @Summary Registrar ajuste manual IN/OUT
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.AdjustStockRequest true "Ajuste"
// @Success 201 {object} map[string]interface{}
// @Router /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var req dto.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	balance, err := h.adjustUC.Adjust(c.Context(), inventory.AdjustInputDTO{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Note:      req.Note,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"balance": balance})
}
