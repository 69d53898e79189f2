package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.WorkCenterRepository = (*WorkCenterRepo)(nil)

// WorkCenterRepo centros de trabajo sobre PostgreSQL.
type WorkCenterRepo struct {
	q Querier
}

// NewWorkCenterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkCenterRepository(q Querier) *WorkCenterRepo {
	return &WorkCenterRepo{q: q}
}

// Create persiste un centro de trabajo.
func (r *WorkCenterRepo) Create(wc *entity.WorkCenter) error {
	query := `
		INSERT INTO work_centers (id, name, location, capacity, cost_per_hour, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		wc.ID, wc.Name, wc.Location, wc.Capacity, wc.CostPerHour,
		wc.Status, wc.CreatedAt, wc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create work center: %w", err)
	}
	return nil
}

// GetByID obtiene un centro por ID; nil si no existe.
func (r *WorkCenterRepo) GetByID(id string) (*entity.WorkCenter, error) {
	query := `
		SELECT id, name, location, capacity, cost_per_hour, status, created_at, updated_at
		FROM work_centers WHERE id = $1`
	var wc entity.WorkCenter
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&wc.ID, &wc.Name, &wc.Location, &wc.Capacity, &wc.CostPerHour,
		&wc.Status, &wc.CreatedAt, &wc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work center: %w", err)
	}
	return &wc, nil
}

// UpdateStatus cambia el estado del centro.
func (r *WorkCenterRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_centers SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update work center status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update work center status: centro inexistente")
	}
	return nil
}

// ListWithLoad lista centros ordenados por nombre con el conteo de órdenes de
// trabajo no completadas asignadas a cada uno.
func (r *WorkCenterRepo) ListWithLoad() ([]*repository.WorkCenterWithLoad, error) {
	query := `
		SELECT wc.id, wc.name, wc.location, wc.capacity, wc.cost_per_hour, wc.status,
		       wc.created_at, wc.updated_at,
		       COUNT(wo.id) FILTER (WHERE wo.status <> 'COMPLETED') AS active_wos
		FROM work_centers wc
		LEFT JOIN work_orders wo ON wo.work_center_id = wc.id
		GROUP BY wc.id
		ORDER BY wc.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list work centers: %w", err)
	}
	defer rows.Close()
	var list []*repository.WorkCenterWithLoad
	for rows.Next() {
		var wc entity.WorkCenter
		var active int
		if err := rows.Scan(&wc.ID, &wc.Name, &wc.Location, &wc.Capacity,
			&wc.CostPerHour, &wc.Status, &wc.CreatedAt, &wc.UpdatedAt, &active); err != nil {
			return nil, fmt.Errorf("scan work center: %w", err)
		}
		list = append(list, &repository.WorkCenterWithLoad{WorkCenter: &wc, ActiveWOs: active})
	}
	return list, rows.Err()
}
