package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// BOMRepository es el puerto de persistencia para recetas (BOM).
type BOMRepository interface {
	Create(bom *entity.BOM) error
	GetByID(id string) (*entity.BOM, error)
	// GetActiveByProduct devuelve la BOM activa del producto con sus componentes
	// en orden de posición, o nil si el producto no tiene receta (ítem suelto).
	// Ante datos históricos con más de una activa, resuelve por created_at más antiguo.
	GetActiveByProduct(productID string) (*entity.BOM, error)
	ListByProduct(productID string) ([]*entity.BOM, error)
	// Activate marca la BOM como activa y desactiva a las hermanas del mismo
	// producto en la misma transacción.
	Activate(id string) error
	AddComponent(component *entity.BOMComponent) error
	RemoveComponent(componentID string) error
}
