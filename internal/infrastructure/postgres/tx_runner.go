package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and manufacturing.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ manufacturing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es el límite atómico de un ajuste de stock: asiento del kardex + caché de saldo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	entryRepo := NewStockEntryRepository(tx)

	if err := fn(productRepo, entryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunManufacturing inicia una transacción con los repos de fabricación (para
// alta y completado de órdenes de trabajo).
func (r *TxRunner) RunManufacturing(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
	bomRepo repository.BOMRepository,
	moRepo repository.ManufacturingOrderRepository,
	woRepo repository.WorkOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	entryRepo := NewStockEntryRepository(tx)
	bomRepo := NewBOMRepository(tx)
	moRepo := NewManufacturingOrderRepository(tx)
	woRepo := NewWorkOrderRepository(tx)

	if err := fn(productRepo, entryRepo, bomRepo, moRepo, woRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
