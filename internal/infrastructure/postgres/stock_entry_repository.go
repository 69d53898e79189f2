package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo kardex sobre PostgreSQL. Solo inserta: los asientos son
// inmutables y jamás se actualizan ni se borran.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create agrega un asiento al kardex.
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_entries (id, product_id, type, quantity, change, balance_after, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	note := (*string)(nil)
	if entry.Note != "" {
		note = &entry.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Type, entry.Quantity,
		entry.Change, entry.BalanceAfter, note, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock entry: %w", err)
	}
	return nil
}

// ListByProduct lista asientos de un producto, más recientes primero.
func (r *StockEntryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, type, quantity, change, balance_after, note, created_at
		FROM stock_entries WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		var note *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Type, &e.Quantity,
			&e.Change, &e.BalanceAfter, &note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		if note != nil {
			e.Note = *note
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumChanges recalcula el saldo desde el kardex (suma de change).
func (r *StockEntryRepo) SumChanges(productID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(change), 0) FROM stock_entries WHERE product_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock entries: %w", err)
	}
	return sum, nil
}
