package entity

import "time"

// Estados de una orden de trabajo. COMPLETED es terminal: una orden se completa
// a lo sumo una vez; reintentos posteriores no tocan inventario.
const (
	WOStatusPending   = "PENDING"
	WOStatusStarted   = "STARTED"
	WOStatusCompleted = "COMPLETED"
)

// Prioridades de una orden de trabajo.
const (
	WOPriorityLow    = "LOW"
	WOPriorityMedium = "MEDIUM"
	WOPriorityHigh   = "HIGH"
)

// WorkOrder es la tarea accionable ligada a una orden de fabricación: quién la
// ejecuta, dónde y en qué estado va. Completarla dispara la transacción de
// consumo de materiales y alta del producto terminado.
type WorkOrder struct {
	ID               string
	MOID             string
	Title            string
	Status           string // PENDING | STARTED | COMPLETED
	Priority         string // LOW | MEDIUM | HIGH
	WorkCenterID     *string
	AssignedToID     *string
	EstimatedMinutes *int
	ActualMinutes    *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkOrderComment es un comentario con marca de tiempo sobre una orden de trabajo.
type WorkOrderComment struct {
	ID          string
	WorkOrderID string
	AuthorID    string
	Body        string
	CreatedAt   time.Time
}
