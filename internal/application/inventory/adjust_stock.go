package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// AdjustStockUseCase aplica un movimiento IN/OUT sobre un producto: valida,
// bloquea la fila del producto (SELECT FOR UPDATE), agrega el asiento al kardex
// y actualiza el saldo denormalizado, todo en una transacción.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustInputDTO entrada para un ajuste manual de stock.
type AdjustInputDTO struct {
	ProductID string
	Type      string // IN | OUT
	Quantity  decimal.Decimal
	Note      string
}

// Adjust ejecuta el ajuste y devuelve el saldo resultante.
// OUT que dejaría saldo negativo falla con InsufficientStockError sin mutar nada.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustInputDTO) (decimal.Decimal, error) {
	if input.Type != entity.StockEntryIn && input.Type != entity.StockEntryOut {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if input.ProductID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}

	var newBalance decimal.Decimal
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newBalance, err = ApplyAdjustment(productRepo, entryRepo, product, input.Type, input.Quantity, input.Note, time.Now())
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// ApplyAdjustment aplica un movimiento usando los repositorios del caller (misma
// transacción): calcula el cambio con signo, rechaza OUT que dejaría saldo
// negativo, crea el asiento con BalanceAfter y sincroniza products.stock.
// El producto debe venir ya bloqueado (GetForUpdate). Lo reutiliza el completado
// de órdenes de trabajo para consumir componentes y dar de alta el terminado.
func ApplyAdjustment(
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
	product *entity.Product,
	entryType string,
	quantity decimal.Decimal,
	note string,
	now time.Time,
) (decimal.Decimal, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	change := quantity
	if entryType == entity.StockEntryOut {
		change = quantity.Neg()
	}
	newBalance := product.Stock.Add(change)
	if entryType == entity.StockEntryOut && newBalance.IsNegative() {
		return decimal.Zero, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Required:    quantity,
			Available:   product.Stock,
		}
	}

	entry := &entity.StockEntry{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		Type:         entryType,
		Quantity:     quantity,
		Change:       change,
		BalanceAfter: newBalance,
		Note:         note,
		CreatedAt:    now,
	}
	if err := entryRepo.Create(entry); err != nil {
		return decimal.Zero, err
	}
	if err := productRepo.UpdateStock(product.ID, newBalance); err != nil {
		return decimal.Zero, err
	}
	product.Stock = newBalance
	return newBalance, nil
}
