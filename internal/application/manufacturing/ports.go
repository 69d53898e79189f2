package manufacturing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de fabricación atados a esa tx. Es el límite atómico del
// completado de órdenes: consumo de componentes, alta del terminado y cambio
// de estado se confirman juntos o se revierte todo.
type TxRunner interface {
	RunManufacturing(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		bomRepo repository.BOMRepository,
		moRepo repository.ManufacturingOrderRepository,
		woRepo repository.WorkOrderRepository,
	) error) error
}

// Event es el payload de una notificación en tiempo real hacia el tablero.
type Event struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// Nombres de eventos emitidos hacia el canal realtime.
const (
	EventWorkOrderCreated = "work-order:created"
	EventWorkOrderUpdated = "work-order:updated"
)

// Notifier emite eventos best-effort después del commit. Sin acuse de recibo:
// que no haya nadie escuchando no es un error, y un fallo del transporte jamás
// debe revertir ni bloquear la transacción que lo originó.
type Notifier interface {
	Notify(event string, payload Event)
}

// NopNotifier descarta todos los eventos. Para tests y para arrancar sin canal realtime.
type NopNotifier struct{}

// Notify no hace nada.
func (NopNotifier) Notify(string, Event) {}

// TravelerData datos para la hoja viajera imprimible de una orden de trabajo.
type TravelerData struct {
	WorkOrder    *entity.WorkOrder
	Order        *entity.ManufacturingOrder
	ProductName  string
	Requirements []TravelerRequirement
}

// TravelerRequirement línea de materiales en la hoja viajera.
type TravelerRequirement struct {
	ComponentName string
	ComponentSKU  string
	PerUnit       decimal.Decimal
	Required      decimal.Decimal
}

// TravelerPDFGenerator genera el PDF de la hoja viajera.
type TravelerPDFGenerator interface {
	GenerateTravelerPDF(ctx context.Context, data TravelerData) ([]byte, error)
}
