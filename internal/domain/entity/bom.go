package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOM (Bill of Materials) es la receta de un producto terminado: la lista de
// componentes y cuánto se consume de cada uno por unidad producida.
// Un producto puede tener varias versiones de BOM pero a lo sumo una activa;
// la activación desactiva a las hermanas en la misma transacción.
type BOM struct {
	ID         string
	ProductID  string // producto padre (terminado)
	Version    int
	Active     bool
	Components []BOMComponent // en orden de Position
	CreatedAt  time.Time
}

// BOMComponent es una línea de la receta: referencia al producto componente y
// la cantidad consumida por unidad del padre. QuantityPerUnit > 0 y el
// componente nunca puede ser el propio producto padre (sin auto-ciclos).
type BOMComponent struct {
	ID              string
	BOMID           string
	ComponentID     string // producto materia prima / subensamble
	QuantityPerUnit decimal.Decimal
	Position        int // orden dentro de la receta
	CreatedAt       time.Time
}
