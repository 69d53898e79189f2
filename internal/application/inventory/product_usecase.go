package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// ProductUseCase administración de productos y consulta del kardex.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	entryRepo   repository.StockEntryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository, entryRepo repository.StockEntryRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, entryRepo: entryRepo}
}

// Create crea un producto; si InitialStock > 0 escribe el primer asiento del
// kardex ("Stock inicial") en la misma transacción, de modo que saldo y kardex
// nacen ya consistentes.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Stock:     decimal.Zero,
		MinStock:  in.MinStock,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.InitialStock.GreaterThan(decimal.Zero) {
			_, err := ApplyAdjustment(productRepo, entryRepo, product, entity.StockEntryIn, in.InitialStock, "Stock inicial", now)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con su saldo actual y flag de stock bajo.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetDetail devuelve el producto y su kardex (asientos más recientes primero).
func (uc *ProductUseCase) GetDetail(ctx context.Context, id string, page dto.PageRequest) (*dto.ProductResponse, []dto.StockEntryResponse, error) {
	page.DefaultPage()
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListByProduct(id, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	entryDTOs := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		entryDTOs = append(entryDTOs, dto.StockEntryResponse{
			ID:           e.ID,
			Type:         e.Type,
			Quantity:     e.Quantity,
			Change:       e.Change,
			BalanceAfter: e.BalanceAfter,
			Note:         e.Note,
			CreatedAt:    e.CreatedAt,
		})
	}
	return toProductResponse(product), entryDTOs, nil
}

// Reconcile verifica el invariante kardex/caché para un producto: la suma de
// cambios del kardex debe igualar el saldo denormalizado. Devuelve la suma y
// ErrConflict si divergen (síntoma de un bug en la capa de ajustes, nunca
// esperado en operación normal).
func (uc *ProductUseCase) Reconcile(ctx context.Context, id string) (decimal.Decimal, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	sum, err := uc.entryRepo.SumChanges(id)
	if err != nil {
		return decimal.Zero, err
	}
	if !manufacturing.Reconciled(product.Stock, sum) {
		return sum, domain.ErrConflict
	}
	return sum, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Price:     p.Price,
		LowStock:  p.BelowMinStock(),
		CreatedAt: p.CreatedAt,
	}
}
