package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
)

// ProductHandler maneja el catálogo de productos y su kardex.
type ProductHandler struct {
	productUC *inventory.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(productUC *inventory.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// Create maneja POST /api/products
// @Summary Crear producto
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Datos del producto"
// @Success 201 {object} dto.ProductResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.Create(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List maneja GET /api/products
// @Summary Listar productos con saldo actual
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	products, err := h.productUC.List(c.Context(), page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(products)
}

// Get maneja GET /api/products/:id
// @Summary Detalle de producto con historial del kardex
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	product, entries, err := h.productUC.GetDetail(c.Context(), c.Params("id"), page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"product": product, "entries": entries})
}

// Reconcile maneja POST /api/products/:id/reconcile
// @Summary Verificar saldo cacheado contra la suma del kardex
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} map[string]interface{}
// @Router /api/products/{id}/reconcile [post]
func (h *ProductHandler) Reconcile(c *fiber.Ctx) error {
	sum, err := h.productUC.Reconcile(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"ledger_sum": sum, "consistent": true})
}
