package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de fabricación.
const (
	MOStatePlanned    = "PLANNED"
	MOStateInProgress = "IN_PROGRESS"
	MOStateDone       = "DONE"
)

// ManufacturingOrder (MO) representa una corrida de producción planificada:
// producto objetivo, cantidad a producir y fecha límite.
//
// BOMLines es la foto congelada de la receta activa al momento de crear la
// orden. Al completar se consume desde esta foto, no desde la BOM viva, para
// que ediciones posteriores de la receta no alteren requerimientos históricos.
type ManufacturingOrder struct {
	ID        string
	OrderNo   string // MO-<timestamp>
	Name      string
	ProductID string
	Quantity  decimal.Decimal // unidades a producir, > 0
	State     string          // PLANNED | IN_PROGRESS | DONE
	Deadline  *time.Time
	BOMLines  []MOBOMLine
	CreatedAt time.Time
}

// MOBOMLine es una línea congelada de la receta sobre la orden de fabricación.
type MOBOMLine struct {
	ID              string
	MOID            string
	ComponentID     string
	QuantityPerUnit decimal.Decimal
	Position        int
}
