package inventory

import (
	"context"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que asiento del kardex y caché de
// saldo se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
	) error) error
}
