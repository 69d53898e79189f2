package manufacturing_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido por todos los repos, y un txRunner
// que imita la semántica transaccional de Postgres con snapshot + restore.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	entries  []*entity.StockEntry
	boms     map[string]*entity.BOM
	mos      map[string]*entity.ManufacturingOrder
	wos      map[string]*entity.WorkOrder
	comments []*entity.WorkOrderComment
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		boms:     map[string]*entity.BOM{},
		mos:      map[string]*entity.ManufacturingOrder{},
		wos:      map[string]*entity.WorkOrder{},
	}
}

// seedProduct registra el producto y, si trae stock inicial, el primer asiento
// del kardex, para que el invariante saldo == Σ cambios se cumpla desde el arranque.
func (s *memStore) seedProduct(id, name string, stock decimal.Decimal) *entity.Product {
	p := &entity.Product{ID: id, SKU: "SKU-" + id, Name: name, Stock: stock}
	s.products[id] = p
	if !stock.IsZero() {
		s.entries = append(s.entries, &entity.StockEntry{
			ID: "seed-" + id, ProductID: id, Type: entity.StockEntryIn,
			Quantity: stock, Change: stock, BalanceAfter: stock, Note: "Stock inicial",
		})
	}
	return p
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	// Los asientos son inmutables: basta copiar el encabezado del slice.
	snap.entries = append([]*entity.StockEntry(nil), s.entries...)
	for id, b := range s.boms {
		cb := *b
		cb.Components = append([]entity.BOMComponent(nil), b.Components...)
		snap.boms[id] = &cb
	}
	for id, mo := range s.mos {
		cm := *mo
		cm.BOMLines = append([]entity.MOBOMLine(nil), mo.BOMLines...)
		snap.mos[id] = &cm
	}
	for id, wo := range s.wos {
		cw := *wo
		snap.wos[id] = &cw
	}
	snap.comments = append([]*entity.WorkOrderComment(nil), s.comments...)
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.entries = snap.entries
	s.boms = snap.boms
	s.mos = snap.mos
	s.wos = snap.wos
	s.comments = snap.comments
}

// sumChanges recalcula el saldo de un producto desde el kardex.
func (s *memStore) sumChanges(productID string) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.ProductID == productID {
			sum = sum.Add(e.Change)
		}
	}
	return sum
}

func (s *memStore) entriesFor(productID string) []*entity.StockEntry {
	var out []*entity.StockEntry
	for _, e := range s.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out
}

// fakeTxRunner imita Begin/Commit/Rollback: si fn falla, el store vuelve al
// estado previo, como haría el rollback de Postgres.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) RunManufacturing(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockEntryRepository,
	repository.BOMRepository,
	repository.ManufacturingOrderRepository,
	repository.WorkOrderRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeProductRepo{s: r.store},
		&fakeEntryRepo{s: r.store},
		&fakeBOMRepo{s: r.store},
		&fakeMORepo{s: r.store},
		&fakeWORepo{s: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Repos fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeEntryRepo struct{ s *memStore }

func (r *fakeEntryRepo) Create(e *entity.StockEntry) error {
	ce := *e
	r.s.entries = append(r.s.entries, &ce)
	return nil
}

func (r *fakeEntryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockEntry, error) {
	return r.s.entriesFor(productID), nil
}

func (r *fakeEntryRepo) SumChanges(productID string) (decimal.Decimal, error) {
	return r.s.sumChanges(productID), nil
}

type fakeBOMRepo struct{ s *memStore }

func (r *fakeBOMRepo) Create(b *entity.BOM) error {
	cb := *b
	r.s.boms[b.ID] = &cb
	return nil
}

func (r *fakeBOMRepo) GetByID(id string) (*entity.BOM, error) {
	b, ok := r.s.boms[id]
	if !ok {
		return nil, nil
	}
	cb := *b
	return &cb, nil
}

func (r *fakeBOMRepo) GetActiveByProduct(productID string) (*entity.BOM, error) {
	var active *entity.BOM
	for _, b := range r.s.boms {
		if b.ProductID == productID && b.Active {
			if active == nil || b.CreatedAt.Before(active.CreatedAt) {
				active = b
			}
		}
	}
	if active == nil {
		return nil, nil
	}
	cb := *active
	return &cb, nil
}

func (r *fakeBOMRepo) ListByProduct(productID string) ([]*entity.BOM, error) {
	var out []*entity.BOM
	for _, b := range r.s.boms {
		if b.ProductID == productID {
			cb := *b
			out = append(out, &cb)
		}
	}
	return out, nil
}

func (r *fakeBOMRepo) Activate(id string) error {
	target, ok := r.s.boms[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, b := range r.s.boms {
		if b.ProductID == target.ProductID {
			b.Active = b.ID == id
		}
	}
	return nil
}

func (r *fakeBOMRepo) AddComponent(c *entity.BOMComponent) error {
	b, ok := r.s.boms[c.BOMID]
	if !ok {
		return domain.ErrNotFound
	}
	b.Components = append(b.Components, *c)
	return nil
}

func (r *fakeBOMRepo) RemoveComponent(componentID string) error {
	for _, b := range r.s.boms {
		for i, c := range b.Components {
			if c.ID == componentID {
				b.Components = append(b.Components[:i], b.Components[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

type fakeMORepo struct{ s *memStore }

func (r *fakeMORepo) Create(mo *entity.ManufacturingOrder) error {
	cm := *mo
	r.s.mos[mo.ID] = &cm
	return nil
}

func (r *fakeMORepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	mo, ok := r.s.mos[id]
	if !ok {
		return nil, nil
	}
	cm := *mo
	return &cm, nil
}

func (r *fakeMORepo) UpdateState(id, state string) error {
	mo, ok := r.s.mos[id]
	if !ok {
		return domain.ErrNotFound
	}
	mo.State = state
	return nil
}

func (r *fakeMORepo) List(limit, offset int) ([]*entity.ManufacturingOrder, error) {
	var out []*entity.ManufacturingOrder
	for _, mo := range r.s.mos {
		cm := *mo
		out = append(out, &cm)
	}
	return out, nil
}

type fakeWORepo struct{ s *memStore }

func (r *fakeWORepo) Create(wo *entity.WorkOrder) error {
	cw := *wo
	r.s.wos[wo.ID] = &cw
	return nil
}

func (r *fakeWORepo) GetByID(id string) (*entity.WorkOrder, error) {
	wo, ok := r.s.wos[id]
	if !ok {
		return nil, nil
	}
	cw := *wo
	return &cw, nil
}

func (r *fakeWORepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return r.GetByID(id)
}

func (r *fakeWORepo) UpdateStatus(id, status string) error {
	wo, ok := r.s.wos[id]
	if !ok {
		return domain.ErrNotFound
	}
	wo.Status = status
	return nil
}

func (r *fakeWORepo) Update(wo *entity.WorkOrder) error {
	if _, ok := r.s.wos[wo.ID]; !ok {
		return domain.ErrNotFound
	}
	cw := *wo
	r.s.wos[wo.ID] = &cw
	return nil
}

func (r *fakeWORepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, wo := range r.s.wos {
		cw := *wo
		out = append(out, &cw)
	}
	return out, nil
}

func (r *fakeWORepo) AddComment(c *entity.WorkOrderComment) error {
	cc := *c
	r.s.comments = append(r.s.comments, &cc)
	return nil
}

func (r *fakeWORepo) ListComments(workOrderID string) ([]*entity.WorkOrderComment, error) {
	var out []*entity.WorkOrderComment
	for _, c := range r.s.comments {
		if c.WorkOrderID == workOrderID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificadores fake
// ──────────────────────────────────────────────────────────────────────────────

// recordingNotifier acumula los eventos emitidos.
type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Event   string
	Payload manufacturing.Event
}

func (n *recordingNotifier) Notify(event string, payload manufacturing.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedEvent{Event: event, Payload: payload})
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

// panicNotifier simula un transporte realtime caído.
type panicNotifier struct{}

func (panicNotifier) Notify(string, manufacturing.Event) {
	panic("transporte realtime caído")
}
