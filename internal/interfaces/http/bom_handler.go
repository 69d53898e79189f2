package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
)

// BOMHandler maneja las recetas (listas de materiales).
type BOMHandler struct {
	bomUC *manufacturing.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(bomUC *manufacturing.BOMUseCase) *BOMHandler {
	return &BOMHandler{bomUC: bomUC}
}

// AddComponent maneja POST /api/boms/components
// @Summary Agregar componente a la receta activa (la crea si no existe)
// @Tags boms
// @Accept json
// @Produce json
// @Param request body dto.AddBOMComponentRequest true "Componente"
// @Success 201 {object} dto.BOMResponse
// @Router /api/boms/components [post]
func (h *BOMHandler) AddComponent(c *fiber.Ctx) error {
	var req dto.AddBOMComponentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	bom, err := h.bomUC.AddComponent(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bom)
}

// RemoveComponent maneja DELETE /api/boms/components/:id
// @Summary Quitar componente de una receta
// @Tags boms
// @Param id path string true "ID del componente"
// @Success 204
// @Router /api/boms/components/{id} [delete]
func (h *BOMHandler) RemoveComponent(c *fiber.Ctx) error {
	if err := h.bomUC.RemoveComponent(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate maneja POST /api/boms/:id/activate
// @Summary Activar una versión de receta (desactiva las hermanas)
// @Tags boms
// @Param id path string true "ID de la receta"
// @Success 204
// @Router /api/boms/{id}/activate [post]
func (h *BOMHandler) Activate(c *fiber.Ctx) error {
	if err := h.bomUC.Activate(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByProduct maneja GET /api/products/:id/boms
// @Summary Listar versiones de receta de un producto
// @Tags boms
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {array} dto.BOMResponse
// @Router /api/products/{id}/boms [get]
func (h *BOMHandler) ListByProduct(c *fiber.Ctx) error {
	boms, err := h.bomUC.ListByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(boms)
}

// ResolveActive maneja GET /api/products/:id/bom
// @Summary Componentes de la receta activa (vacío si el producto es suelto)
// @Tags boms
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {array} dto.BOMComponentResponse
// @Router /api/products/{id}/bom [get]
func (h *BOMHandler) ResolveActive(c *fiber.Ctx) error {
	components, err := h.bomUC.ResolveActive(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(components)
}
