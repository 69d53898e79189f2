package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	StockEntryIn  = "IN"  // entrada
	StockEntryOut = "OUT" // salida
)

// StockEntry es un asiento inmutable del kardex de un producto: se crea una vez
// y nunca se actualiza ni se borra. Quantity es siempre la magnitud positiva;
// Change lleva el signo (+IN / -OUT); BalanceAfter es la foto del saldo al
// momento de registrar el asiento.
//
// Invariante por producto: BalanceAfter(n) = BalanceAfter(n-1) + Change(n).
type StockEntry struct {
	ID           string
	ProductID    string
	Type         string          // IN | OUT
	Quantity     decimal.Decimal // magnitud, siempre > 0
	Change       decimal.Decimal // con signo
	BalanceAfter decimal.Decimal
	Note         string
	CreatedAt    time.Time
}
