package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto: materia prima, subensamble o producto terminado.
// Stock es el saldo actual denormalizado; es una caché de la suma de los
// movimientos del kardex (StockEntry) y solo lo muta el servicio de ajustes,
// siempre en la misma transacción que el asiento correspondiente.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Category  string
	Stock     decimal.Decimal  // saldo actual (caché del kardex)
	MinStock  *decimal.Decimal // umbral de alerta de stock bajo (opcional)
	Price     *decimal.Decimal // precio de venta (opcional)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinStock indica si el producto está por debajo de su umbral de alerta.
func (p *Product) BelowMinStock() bool {
	return p.MinStock != nil && p.Stock.LessThan(*p.MinStock)
}
