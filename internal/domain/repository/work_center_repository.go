package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// WorkCenterWithLoad es un centro de trabajo junto con sus órdenes activas.
type WorkCenterWithLoad struct {
	WorkCenter *entity.WorkCenter
	ActiveWOs  int
}

// WorkCenterRepository es el puerto de persistencia para centros de trabajo.
type WorkCenterRepository interface {
	Create(wc *entity.WorkCenter) error
	GetByID(id string) (*entity.WorkCenter, error)
	UpdateStatus(id, status string) error
	// ListWithLoad lista los centros con el conteo de órdenes no completadas.
	ListWithLoad() ([]*WorkCenterWithLoad, error)
}
