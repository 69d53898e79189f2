package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el tablero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountMOsByState cuenta órdenes de fabricación por estado.
func (r *AnalyticsRepo) CountMOsByState() ([]repository.MOStateCount, error) {
	query := `SELECT state, COUNT(*) FROM manufacturing_orders GROUP BY state ORDER BY state`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count mos by state: %w", err)
	}
	defer rows.Close()
	var list []repository.MOStateCount
	for rows.Next() {
		var c repository.MOStateCount
		if err := rows.Scan(&c.State, &c.Count); err != nil {
			return nil, fmt.Errorf("scan state count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// InventoryValue calcula el valor total del inventario: Σ(stock × precio).
// Productos sin precio no aportan.
func (r *AnalyticsRepo) InventoryValue() (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(stock * price), 0) FROM products WHERE price IS NOT NULL`
	var value decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}

// RecentPerformance últimas órdenes completadas con tiempo estimado y real.
func (r *AnalyticsRepo) RecentPerformance(limit int) ([]repository.WorkOrderPerformance, error) {
	query := `
		SELECT title, estimated_minutes, actual_minutes
		FROM work_orders
		WHERE status = 'COMPLETED' AND estimated_minutes IS NOT NULL AND actual_minutes IS NOT NULL
		ORDER BY updated_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent performance: %w", err)
	}
	defer rows.Close()
	var list []repository.WorkOrderPerformance
	for rows.Next() {
		var p repository.WorkOrderPerformance
		if err := rows.Scan(&p.Title, &p.EstimatedMinutes, &p.ActualMinutes); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
