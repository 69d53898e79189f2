package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: productos + kardex en memoria, con rollback por snapshot.
// ──────────────────────────────────────────────────────────────────────────────

type memInventory struct {
	products map[string]*entity.Product
	entries  []*entity.StockEntry
}

func newMemInventory() *memInventory {
	return &memInventory{products: map[string]*entity.Product{}}
}

func (s *memInventory) seed(id, name string, stock decimal.Decimal) {
	s.products[id] = &entity.Product{ID: id, SKU: "SKU-" + id, Name: name, Stock: stock}
	if !stock.IsZero() {
		s.entries = append(s.entries, &entity.StockEntry{
			ID: "seed-" + id, ProductID: id, Type: entity.StockEntryIn,
			Quantity: stock, Change: stock, BalanceAfter: stock, Note: "Stock inicial",
		})
	}
}

func (s *memInventory) sumChanges(productID string) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.ProductID == productID {
			sum = sum.Add(e.Change)
		}
	}
	return sum
}

type memProductRepo struct{ s *memInventory }

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memEntryRepo struct{ s *memInventory }

func (r *memEntryRepo) Create(e *entity.StockEntry) error {
	ce := *e
	r.s.entries = append(r.s.entries, &ce)
	return nil
}

func (r *memEntryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEntryRepo) SumChanges(productID string) (decimal.Decimal, error) {
	return r.s.sumChanges(productID), nil
}

type memTxRunner struct{ s *memInventory }

func (r *memTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockEntryRepository,
) error) error {
	snapProducts := map[string]*entity.Product{}
	for id, p := range r.s.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapEntries := append([]*entity.StockEntry(nil), r.s.entries...)
	err := fn(&memProductRepo{s: r.s}, &memEntryRepo{s: r.s})
	if err != nil {
		r.s.products = snapProducts
		r.s.entries = snapEntries
	}
	return err
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del servicio de ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestAjuste_IN_ActualizaSaldoYKardex(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("10"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	balance, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
		ProductID: "steel", Type: entity.StockEntryIn, Quantity: d("5.5"), Note: "Compra",
	})
	require.NoError(t, err)
	assert.True(t, balance.Equal(d("15.5")))
	assert.True(t, s.products["steel"].Stock.Equal(d("15.5")))

	require.Len(t, s.entries, 2)
	e := s.entries[1]
	assert.Equal(t, entity.StockEntryIn, e.Type)
	assert.True(t, e.Quantity.Equal(d("5.5")), "Quantity es la magnitud positiva")
	assert.True(t, e.Change.Equal(d("5.5")), "Change lleva el signo")
	assert.True(t, e.BalanceAfter.Equal(d("15.5")))
	assert.Equal(t, "Compra", e.Note)
}

func TestAjuste_OUT_DescuentaConSigno(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("10"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	balance, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
		ProductID: "steel", Type: entity.StockEntryOut, Quantity: d("4"),
	})
	require.NoError(t, err)
	assert.True(t, balance.Equal(d("6")))

	e := s.entries[len(s.entries)-1]
	assert.True(t, e.Quantity.Equal(d("4")))
	assert.True(t, e.Change.Equal(d("-4")))
	assert.True(t, e.BalanceAfter.Equal(d("6")))
}

func TestAjuste_OUT_SaldoExacto_PermiteLlegarACero(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("10"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	balance, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
		ProductID: "steel", Type: entity.StockEntryOut, Quantity: d("10"),
	})
	require.NoError(t, err, "disponible == requerido debe pasar")
	assert.True(t, balance.IsZero())
}

func TestAjuste_OUT_Insuficiente_NoMutaNada(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("3"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	_, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
		ProductID: "steel", Type: entity.StockEntryOut, Quantity: d("5"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "steel", stockErr.ProductID)
	assert.True(t, stockErr.Required.Equal(d("5")))
	assert.True(t, stockErr.Available.Equal(d("3")))

	assert.True(t, s.products["steel"].Stock.Equal(d("3")), "el saldo no debe cambiar")
	assert.Len(t, s.entries, 1, "no debe agregarse asiento")
}

func TestAjuste_Validacion(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("10"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	cases := []struct {
		name string
		in   inventory.AdjustInputDTO
	}{
		{"tipo desconocido", inventory.AdjustInputDTO{ProductID: "steel", Type: "TRANSFER", Quantity: d("1")}},
		{"cantidad cero", inventory.AdjustInputDTO{ProductID: "steel", Type: entity.StockEntryIn, Quantity: decimal.Zero}},
		{"cantidad negativa", inventory.AdjustInputDTO{ProductID: "steel", Type: entity.StockEntryIn, Quantity: d("-1")}},
		{"sin producto", inventory.AdjustInputDTO{Type: entity.StockEntryIn, Quantity: d("1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Adjust(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Len(t, s.entries, 1, "ninguna entrada inválida llega al kardex")
}

func TestAjuste_ProductoInexistente(t *testing.T) {
	s := newMemInventory()
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	_, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
		ProductID: "fantasma", Type: entity.StockEntryIn, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAjuste_SecuenciaDeMovimientos_MantieneElInvariante(t *testing.T) {
	s := newMemInventory()
	s.seed("steel", "Acero", d("10"))
	uc := inventory.NewAdjustStockUseCase(&memTxRunner{s: s})

	moves := []struct {
		typ string
		qty string
	}{
		{entity.StockEntryIn, "2.5"},
		{entity.StockEntryOut, "7"},
		{entity.StockEntryIn, "0.5"},
		{entity.StockEntryOut, "6"},
	}
	for _, m := range moves {
		_, err := uc.Adjust(context.Background(), inventory.AdjustInputDTO{
			ProductID: "steel", Type: m.typ, Quantity: d(m.qty),
		})
		require.NoError(t, err)
	}

	// 10 + 2.5 - 7 + 0.5 - 6 = 0
	assert.True(t, s.products["steel"].Stock.IsZero())
	assert.True(t, s.sumChanges("steel").IsZero(), "kardex y caché cierran en el mismo saldo")

	// BalanceAfter encadena: saldo(n) = saldo(n-1) + cambio(n)
	prev := decimal.Zero
	for _, e := range s.entries {
		assert.True(t, e.BalanceAfter.Equal(prev.Add(e.Change)))
		prev = e.BalanceAfter
	}
}
