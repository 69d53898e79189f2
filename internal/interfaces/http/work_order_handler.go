package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// WorkOrderHandler maneja el ciclo de vida de las órdenes de trabajo.
type WorkOrderHandler struct {
	workOrderUC *manufacturing.WorkOrderUseCase
	completeUC  *manufacturing.CompleteWorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(workOrderUC *manufacturing.WorkOrderUseCase, completeUC *manufacturing.CompleteWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderUC: workOrderUC, completeUC: completeUC}
}

// Create maneja POST /api/work-orders
// @Summary Crear orden de trabajo (y su orden de fabricación)
// @Tags work-orders
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkOrderRequest true "Orden"
// @Success 201 {object} dto.WorkOrderResponse
// @Router /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	wo, err := h.workOrderUC.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wo)
}

// List maneja GET /api/work-orders
// @Summary Listar órdenes de trabajo
// @Tags work-orders
// @Produce json
// @Success 200 {array} dto.WorkOrderResponse
// @Router /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	orders, err := h.workOrderUC.List(c.Context(), page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(orders)
}

// Get maneja GET /api/work-orders/:id
// @Summary Detalle de una orden de trabajo
// @Tags work-orders
// @Produce json
// @Param id path string true "ID de la orden"
// @Success 200 {object} dto.WorkOrderResponse
// @Router /api/work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *fiber.Ctx) error {
	wo, err := h.workOrderUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(wo)
}

// UpdateStatus maneja PATCH /api/work-orders/:id/status
// @Summary Avanzar el estado de la orden (STARTED o COMPLETED)
// @Description COMPLETED ejecuta la transacción de cierre: consume componentes
// @Description según la receta congelada y produce el terminado.
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path string true "ID de la orden"
// @Param request body dto.UpdateWorkOrderStatusRequest true "Nuevo estado"
// @Success 200 {object} dto.WorkOrderResponse
// @Router /api/work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateWorkOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	var err error
	switch req.Status {
	case entity.WOStatusStarted:
		err = h.workOrderUC.Start(c.Context(), id)
	case entity.WOStatusCompleted:
		err = h.completeUC.Complete(c.Context(), id)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser STARTED o COMPLETED"})
	}
	if err != nil {
		return mapError(c, err)
	}
	wo, err := h.workOrderUC.Get(c.Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(wo)
}

// AddComment maneja POST /api/work-orders/:id/comments
// @Summary Comentar una orden de trabajo
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path string true "ID de la orden"
// @Param request body dto.AddCommentRequest true "Comentario"
// @Success 201 {object} dto.CommentResponse
// @Router /api/work-orders/{id}/comments [post]
func (h *WorkOrderHandler) AddComment(c *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	comment, err := h.workOrderUC.AddComment(c.Context(), c.Params("id"), GetUserID(c), req.Body)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments maneja GET /api/work-orders/:id/comments
// @Summary Listar comentarios de una orden
// @Tags work-orders
// @Produce json
// @Param id path string true "ID de la orden"
// @Success 200 {array} dto.CommentResponse
// @Router /api/work-orders/{id}/comments [get]
func (h *WorkOrderHandler) ListComments(c *fiber.Ctx) error {
	comments, err := h.workOrderUC.ListComments(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(comments)
}

// TravelerPDF maneja GET /api/work-orders/:id/traveler.pdf
// @Summary Hoja viajera imprimible de la orden
// @Tags work-orders
// @Produce application/pdf
// @Param id path string true "ID de la orden"
// @Success 200 {file} binary
// @Router /api/work-orders/{id}/traveler.pdf [get]
func (h *WorkOrderHandler) TravelerPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.workOrderUC.TravelerPDF(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="traveler.pdf"`)
	return c.Send(pdfBytes)
}
