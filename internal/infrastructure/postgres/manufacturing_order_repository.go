package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

const moColumns = `id, order_no, name, product_id, quantity, state, deadline, created_at`

// ManufacturingOrderRepo órdenes de fabricación sobre PostgreSQL, incluida la
// foto congelada de receta en mo_bom_lines.
type ManufacturingOrderRepo struct {
	q Querier
}

// NewManufacturingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManufacturingOrderRepository(q Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{q: q}
}

// Create persiste la orden y sus líneas congeladas.
func (r *ManufacturingOrderRepo) Create(mo *entity.ManufacturingOrder) error {
	query := `
		INSERT INTO manufacturing_orders (` + moColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mo.ID, mo.OrderNo, mo.Name, mo.ProductID, mo.Quantity,
		mo.State, mo.Deadline, mo.CreatedAt)
	if err != nil {
		return fmt.Errorf("create manufacturing order: %w", err)
	}
	for _, line := range mo.BOMLines {
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO mo_bom_lines (id, mo_id, component_id, quantity_per_unit, position)
			VALUES ($1, $2, $3, $4, $5)`,
			line.ID, mo.ID, line.ComponentID, line.QuantityPerUnit, line.Position)
		if err != nil {
			return fmt.Errorf("create mo bom line: %w", err)
		}
	}
	return nil
}

// GetByID carga la orden con sus líneas congeladas en orden de posición; nil si no existe.
func (r *ManufacturingOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	var mo entity.ManufacturingOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT `+moColumns+` FROM manufacturing_orders WHERE id = $1`, id).Scan(
		&mo.ID, &mo.OrderNo, &mo.Name, &mo.ProductID, &mo.Quantity,
		&mo.State, &mo.Deadline, &mo.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturing order: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, mo_id, component_id, quantity_per_unit, position
		FROM mo_bom_lines WHERE mo_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list mo bom lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.MOBOMLine
		if err := rows.Scan(&line.ID, &line.MOID, &line.ComponentID,
			&line.QuantityPerUnit, &line.Position); err != nil {
			return nil, fmt.Errorf("scan mo bom line: %w", err)
		}
		mo.BOMLines = append(mo.BOMLines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &mo, nil
}

// UpdateState cambia el estado de la orden.
func (r *ManufacturingOrderRepo) UpdateState(id, state string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE manufacturing_orders SET state = $2 WHERE id = $1`, id, state)
	if err != nil {
		return fmt.Errorf("update mo state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update mo state: orden inexistente")
	}
	return nil
}

// List lista órdenes, más recientes primero (sin líneas).
func (r *ManufacturingOrderRepo) List(limit, offset int) ([]*entity.ManufacturingOrder, error) {
	query := `SELECT ` + moColumns + ` FROM manufacturing_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ManufacturingOrder
	for rows.Next() {
		var mo entity.ManufacturingOrder
		if err := rows.Scan(&mo.ID, &mo.OrderNo, &mo.Name, &mo.ProductID,
			&mo.Quantity, &mo.State, &mo.Deadline, &mo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan manufacturing order: %w", err)
		}
		list = append(list, &mo)
	}
	return list, rows.Err()
}
