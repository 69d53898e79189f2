package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// StockEntryRepository es el puerto del kardex. Create es la única mutación:
// los asientos jamás se actualizan ni se borran.
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error)
	// SumChanges recalcula el saldo desde el kardex (suma de Change).
	// Se usa para reconciliar contra la caché denormalizada en products.stock.
	SumChanges(productID string) (decimal.Decimal, error)
}
