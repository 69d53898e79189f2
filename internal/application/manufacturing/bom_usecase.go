package manufacturing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// BOMUseCase administración y resolución de recetas.
//
// Política de receta activa: a lo sumo una BOM activa por producto, garantizada
// en escritura (Activate desactiva a las hermanas en la misma transacción).
// La resolución es de un solo nivel: un componente que a su vez tiene receta se
// trata como materia prima, sin explosión recursiva.
type BOMUseCase struct {
	bomRepo     repository.BOMRepository
	productRepo repository.ProductRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(bomRepo repository.BOMRepository, productRepo repository.ProductRepository) *BOMUseCase {
	return &BOMUseCase{bomRepo: bomRepo, productRepo: productRepo}
}

// AddComponent agrega una línea a la receta del producto padre; si el producto
// aún no tiene receta, crea el contenedor (versión 1, activa).
// Rechaza cantidades no positivas y auto-referencias (componente == padre).
func (uc *BOMUseCase) AddComponent(ctx context.Context, in dto.AddBOMComponentRequest) (*dto.BOMResponse, error) {
	if in.ParentID == "" || in.ComponentID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID == in.ComponentID {
		// Sin auto-ciclos: un producto no puede ser componente de sí mismo
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.productRepo.GetByID(in.ParentID)
	if err != nil {
		return nil, err
	}
	component, err := uc.productRepo.GetByID(in.ComponentID)
	if err != nil {
		return nil, err
	}
	if parent == nil || component == nil {
		return nil, domain.ErrNotFound
	}

	bom, err := uc.bomRepo.GetActiveByProduct(in.ParentID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		bom = &entity.BOM{
			ID:        uuid.New().String(),
			ProductID: in.ParentID,
			Version:   1,
			Active:    true,
			CreatedAt: time.Now(),
		}
		if err := uc.bomRepo.Create(bom); err != nil {
			return nil, err
		}
	}

	line := &entity.BOMComponent{
		ID:              uuid.New().String(),
		BOMID:           bom.ID,
		ComponentID:     in.ComponentID,
		QuantityPerUnit: in.Quantity,
		Position:        len(bom.Components),
		CreatedAt:       time.Now(),
	}
	if err := uc.bomRepo.AddComponent(line); err != nil {
		return nil, err
	}
	bom.Components = append(bom.Components, *line)
	return toBOMResponse(bom), nil
}

// RemoveComponent elimina una línea de la receta.
func (uc *BOMUseCase) RemoveComponent(ctx context.Context, componentID string) error {
	if componentID == "" {
		return domain.ErrInvalidInput
	}
	return uc.bomRepo.RemoveComponent(componentID)
}

// Activate marca la versión indicada como la receta autoritativa del producto;
// sus hermanas quedan inactivas en la misma transacción.
func (uc *BOMUseCase) Activate(ctx context.Context, bomID string) error {
	bom, err := uc.bomRepo.GetByID(bomID)
	if err != nil {
		return err
	}
	if bom == nil {
		return domain.ErrNotFound
	}
	return uc.bomRepo.Activate(bomID)
}

// ResolveActive devuelve las líneas de la receta activa del producto en orden
// de posición; lista vacía si el producto es suelto (válido, no es error).
func (uc *BOMUseCase) ResolveActive(ctx context.Context, productID string) ([]dto.BOMComponentResponse, error) {
	bom, err := uc.bomRepo.GetActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return []dto.BOMComponentResponse{}, nil
	}
	return toBOMResponse(bom).Components, nil
}

// ListByProduct lista todas las versiones de receta del producto.
func (uc *BOMUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.BOMResponse, error) {
	boms, err := uc.bomRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMResponse, 0, len(boms))
	for _, b := range boms {
		out = append(out, *toBOMResponse(b))
	}
	return out, nil
}

func toBOMResponse(b *entity.BOM) *dto.BOMResponse {
	components := make([]dto.BOMComponentResponse, 0, len(b.Components))
	for _, c := range b.Components {
		components = append(components, dto.BOMComponentResponse{
			ID:              c.ID,
			ComponentID:     c.ComponentID,
			QuantityPerUnit: c.QuantityPerUnit,
			Position:        c.Position,
		})
	}
	return &dto.BOMResponse{
		ID:         b.ID,
		ProductID:  b.ProductID,
		Version:    b.Version,
		Active:     b.Active,
		Components: components,
	}
}
