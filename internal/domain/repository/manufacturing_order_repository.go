package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// ManufacturingOrderRepository es el puerto de persistencia para órdenes de
// fabricación, incluida su foto congelada de receta (mo_bom_lines).
type ManufacturingOrderRepository interface {
	Create(mo *entity.ManufacturingOrder) error
	// GetByID carga la orden con sus BOMLines en orden de posición.
	GetByID(id string) (*entity.ManufacturingOrder, error)
	UpdateState(id, state string) error
	List(limit, offset int) ([]*entity.ManufacturingOrder, error)
}
