package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo recetas sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Create persiste el contenedor de la receta (sin componentes).
func (r *BOMRepo) Create(bom *entity.BOM) error {
	query := `
		INSERT INTO boms (id, product_id, version, active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		bom.ID, bom.ProductID, bom.Version, bom.Active, bom.CreatedAt)
	if err != nil {
		return fmt.Errorf("create bom: %w", err)
	}
	return nil
}

// GetByID obtiene una receta con sus componentes; nil si no existe.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	return r.getOne(`SELECT id, product_id, version, active, created_at FROM boms WHERE id = $1`, id)
}

// GetActiveByProduct devuelve la receta activa del producto con componentes en
// orden de posición; nil si el producto no tiene receta. Datos históricos con
// más de una activa resuelven determinista por created_at más antiguo.
func (r *BOMRepo) GetActiveByProduct(productID string) (*entity.BOM, error) {
	query := `
		SELECT id, product_id, version, active, created_at
		FROM boms WHERE product_id = $1 AND active
		ORDER BY created_at LIMIT 1`
	return r.getOne(query, productID)
}

func (r *BOMRepo) getOne(query string, arg any) (*entity.BOM, error) {
	var b entity.BOM
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.ProductID, &b.Version, &b.Active, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	components, err := r.listComponents(b.ID)
	if err != nil {
		return nil, err
	}
	b.Components = components
	return &b, nil
}

// ListByProduct lista todas las versiones de receta del producto.
func (r *BOMRepo) ListByProduct(productID string) ([]*entity.BOM, error) {
	query := `
		SELECT id, product_id, version, active, created_at
		FROM boms WHERE product_id = $1 ORDER BY version`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOM
	for rows.Next() {
		var b entity.BOM
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Version, &b.Active, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range list {
		components, err := r.listComponents(b.ID)
		if err != nil {
			return nil, err
		}
		b.Components = components
	}
	return list, nil
}

// Activate marca la receta como activa y desactiva a las hermanas del mismo
// producto en una sola sentencia (misma transacción implícita).
func (r *BOMRepo) Activate(id string) error {
	query := `
		UPDATE boms SET active = (id = $1)
		WHERE product_id = (SELECT product_id FROM boms WHERE id = $1)`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("activate bom: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activate bom: receta inexistente")
	}
	return nil
}

// AddComponent agrega una línea a la receta.
func (r *BOMRepo) AddComponent(component *entity.BOMComponent) error {
	query := `
		INSERT INTO bom_components (id, bom_id, component_id, quantity_per_unit, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.BOMID, component.ComponentID,
		component.QuantityPerUnit, component.Position, component.CreatedAt)
	if err != nil {
		return fmt.Errorf("add bom component: %w", err)
	}
	return nil
}

// RemoveComponent elimina una línea de la receta.
func (r *BOMRepo) RemoveComponent(componentID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bom_components WHERE id = $1`, componentID)
	if err != nil {
		return fmt.Errorf("remove bom component: %w", err)
	}
	return nil
}

func (r *BOMRepo) listComponents(bomID string) ([]entity.BOMComponent, error) {
	query := `
		SELECT id, bom_id, component_id, quantity_per_unit, position, created_at
		FROM bom_components WHERE bom_id = $1 ORDER BY position, created_at`
	rows, err := r.q.Query(context.Background(), query, bomID)
	if err != nil {
		return nil, fmt.Errorf("list bom components: %w", err)
	}
	defer rows.Close()
	var list []entity.BOMComponent
	for rows.Next() {
		var c entity.BOMComponent
		if err := rows.Scan(&c.ID, &c.BOMID, &c.ComponentID,
			&c.QuantityPerUnit, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
