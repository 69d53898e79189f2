package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// WorkOrderRepository es el puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	Create(wo *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// GetForUpdate bloquea la fila de la orden: el guard de idempotencia del
	// completado se evalúa sobre el estado ya bloqueado.
	GetForUpdate(id string) (*entity.WorkOrder, error)
	UpdateStatus(id, status string) error
	Update(wo *entity.WorkOrder) error
	List(limit, offset int) ([]*entity.WorkOrder, error)
	AddComment(comment *entity.WorkOrderComment) error
	ListComments(workOrderID string) ([]*entity.WorkOrderComment, error)
}
