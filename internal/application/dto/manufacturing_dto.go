package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest body para POST /api/work-orders.
// El producto se busca por nombre y se crea si no existe (flujo del tablero).
type CreateWorkOrderRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Priority    string          `json:"priority"` // LOW | MEDIUM | HIGH
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

// UpdateWorkOrderStatusRequest body para PATCH /api/work-orders/:id/status.
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status"` // STARTED | COMPLETED
}

// AddCommentRequest body para POST /api/work-orders/:id/comments.
type AddCommentRequest struct {
	Body string `json:"body"`
}

// WorkOrderResponse orden de trabajo con su orden de fabricación y producto.
type WorkOrderResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Status       string          `json:"status"`
	Priority     string          `json:"priority"`
	MOID         string          `json:"mo_id"`
	OrderNo      string          `json:"order_no"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	State        string          `json:"state"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	WorkCenterID *string         `json:"work_center_id,omitempty"`
	AssignedToID *string         `json:"assigned_to_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CommentResponse comentario de una orden de trabajo.
type CommentResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// AddBOMComponentRequest body para POST /api/boms/components.
type AddBOMComponentRequest struct {
	ParentID    string          `json:"parent_id"`    // producto terminado
	ComponentID string          `json:"component_id"` // materia prima
	Quantity    decimal.Decimal `json:"quantity"`     // por unidad del padre
}

// BOMResponse receta con sus componentes.
type BOMResponse struct {
	ID         string                 `json:"id"`
	ProductID  string                 `json:"product_id"`
	Version    int                    `json:"version"`
	Active     bool                   `json:"active"`
	Components []BOMComponentResponse `json:"components"`
}

// BOMComponentResponse línea de la receta.
type BOMComponentResponse struct {
	ID              string          `json:"id"`
	ComponentID     string          `json:"component_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Position        int             `json:"position"`
}
