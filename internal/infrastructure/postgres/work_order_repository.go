package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

const woColumns = `id, mo_id, title, status, priority, work_center_id, assigned_to_id, estimated_minutes, actual_minutes, created_at, updated_at`

// WorkOrderRepo órdenes de trabajo sobre PostgreSQL (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una orden de trabajo.
func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (` + woColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.MOID, wo.Title, wo.Status, wo.Priority,
		wo.WorkCenterID, wo.AssignedToID, wo.EstimatedMinutes, wo.ActualMinutes,
		wo.CreatedAt, wo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID; nil si no existe.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	return r.getOne(`SELECT `+woColumns+` FROM work_orders WHERE id = $1`, id)
}

// GetForUpdate obtiene la orden y bloquea su fila (SELECT FOR UPDATE): el guard
// de idempotencia del completado se evalúa sobre el estado ya bloqueado.
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return r.getOne(`SELECT `+woColumns+` FROM work_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *WorkOrderRepo) getOne(query string, arg any) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&wo.ID, &wo.MOID, &wo.Title, &wo.Status, &wo.Priority,
		&wo.WorkCenterID, &wo.AssignedToID, &wo.EstimatedMinutes, &wo.ActualMinutes,
		&wo.CreatedAt, &wo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &wo, nil
}

// UpdateStatus cambia el estado de la orden.
func (r *WorkOrderRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update work order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update work order status: orden inexistente")
	}
	return nil
}

// Update actualiza campos de asignación y tiempos.
func (r *WorkOrderRepo) Update(wo *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET title = $2, priority = $3, work_center_id = $4, assigned_to_id = $5,
		    estimated_minutes = $6, actual_minutes = $7, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.Title, wo.Priority, wo.WorkCenterID, wo.AssignedToID,
		wo.EstimatedMinutes, wo.ActualMinutes)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update work order: orden inexistente")
	}
	return nil
}

// List lista órdenes de trabajo, más recientes primero.
func (r *WorkOrderRepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + woColumns + ` FROM work_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var wo entity.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.MOID, &wo.Title, &wo.Status, &wo.Priority,
			&wo.WorkCenterID, &wo.AssignedToID, &wo.EstimatedMinutes, &wo.ActualMinutes,
			&wo.CreatedAt, &wo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &wo)
	}
	return list, rows.Err()
}

// AddComment agrega un comentario a la orden.
func (r *WorkOrderRepo) AddComment(comment *entity.WorkOrderComment) error {
	query := `
		INSERT INTO work_order_comments (id, work_order_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.WorkOrderID, comment.AuthorID, comment.Body, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("add work order comment: %w", err)
	}
	return nil
}

// ListComments lista comentarios en orden cronológico.
func (r *WorkOrderRepo) ListComments(workOrderID string) ([]*entity.WorkOrderComment, error) {
	query := `
		SELECT id, work_order_id, author_id, body, created_at
		FROM work_order_comments WHERE work_order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list work order comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrderComment
	for rows.Next() {
		var c entity.WorkOrderComment
		if err := rows.Scan(&c.ID, &c.WorkOrderID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work order comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
