package manufacturing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// buildCompletionFixture arma el escenario clásico: un engranaje cuya receta
// congelada consume acero y pernos, con una orden de trabajo PENDING lista
// para completar.
//
//	Engranaje: 0 en stock, se producen 2
//	Acero:     10 en stock, 2.5 por unidad  → requiere 5
//	Perno:     20 en stock, 4 por unidad    → requiere 8
func buildCompletionFixture(steelStock, boltStock string) (*memStore, *fakeTxRunner) {
	s := newMemStore()
	s.seedProduct("gear", "Engranaje", decimal.Zero)
	s.seedProduct("steel", "Acero", d(steelStock))
	s.seedProduct("bolt", "Perno", d(boltStock))

	s.mos["mo-1"] = &entity.ManufacturingOrder{
		ID: "mo-1", OrderNo: "MO-1700000000000", Name: "Engranaje x2",
		ProductID: "gear", Quantity: d("2"), State: entity.MOStateInProgress,
		BOMLines: []entity.MOBOMLine{
			{ID: "l1", MOID: "mo-1", ComponentID: "steel", QuantityPerUnit: d("2.5"), Position: 0},
			{ID: "l2", MOID: "mo-1", ComponentID: "bolt", QuantityPerUnit: d("4"), Position: 1},
		},
	}
	s.wos["wo-1"] = &entity.WorkOrder{
		ID: "wo-1", MOID: "mo-1", Title: "Ensamblar Engranaje",
		Status: entity.WOStatusStarted, Priority: entity.WOPriorityMedium,
	}
	return s, &fakeTxRunner{store: s}
}

func TestComplete_ConsumeComponentesYProduceTerminado(t *testing.T) {
	s, tx := buildCompletionFixture("10", "20")
	notifier := &recordingNotifier{}
	uc := manufacturing.NewCompleteWorkOrderUseCase(tx, notifier, nil)

	err := uc.Complete(context.Background(), "wo-1")
	require.NoError(t, err)

	// Saldos finales: conservación de materiales
	assert.True(t, s.products["steel"].Stock.Equal(d("5")), "acero: 10 - 2×2.5 = 5, quedó %s", s.products["steel"].Stock)
	assert.True(t, s.products["bolt"].Stock.Equal(d("12")), "perno: 20 - 2×4 = 12, quedó %s", s.products["bolt"].Stock)
	assert.True(t, s.products["gear"].Stock.Equal(d("2")), "engranaje: 0 + 2 = 2, quedó %s", s.products["gear"].Stock)

	// Estados finales
	assert.Equal(t, entity.WOStatusCompleted, s.wos["wo-1"].Status)
	assert.Equal(t, entity.MOStateDone, s.mos["mo-1"].State)

	// Kardex: un OUT por componente + un IN del terminado
	steelEntries := s.entriesFor("steel")
	require.Len(t, steelEntries, 2) // seed + consumo
	out := steelEntries[1]
	assert.Equal(t, entity.StockEntryOut, out.Type)
	assert.True(t, out.Quantity.Equal(d("5")))
	assert.True(t, out.Change.Equal(d("-5")))
	assert.True(t, out.BalanceAfter.Equal(d("5")))
	assert.Contains(t, out.Note, "MO-1700000000000")

	gearEntries := s.entriesFor("gear")
	require.Len(t, gearEntries, 1)
	assert.Equal(t, entity.StockEntryIn, gearEntries[0].Type)
	assert.True(t, gearEntries[0].BalanceAfter.Equal(d("2")))

	// Invariante saldo == Σ cambios para todos los productos involucrados
	for _, id := range []string{"gear", "steel", "bolt"} {
		assert.True(t, s.products[id].Stock.Equal(s.sumChanges(id)),
			"saldo cacheado de %s debe igualar la suma del kardex", id)
	}

	// Evento emitido tras el commit
	require.Equal(t, 1, notifier.count())
	assert.Equal(t, manufacturing.EventWorkOrderUpdated, notifier.events[0].Event)
	assert.Equal(t, "wo-1", notifier.events[0].Payload.ID)
	assert.Equal(t, entity.WOStatusCompleted, notifier.events[0].Payload.Status)
}

func TestComplete_StockInsuficiente_RevierteTodo(t *testing.T) {
	// Acero alcanza (se consume primero), pernos no: el fallo en el segundo
	// componente debe revertir también el descuento ya aplicado al acero.
	s, tx := buildCompletionFixture("10", "7")
	notifier := &recordingNotifier{}
	uc := manufacturing.NewCompleteWorkOrderUseCase(tx, notifier, nil)

	err := uc.Complete(context.Background(), "wo-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "bolt", stockErr.ProductID)
	assert.True(t, stockErr.Required.Equal(d("8")))
	assert.True(t, stockErr.Available.Equal(d("7")))

	// Nada cambió: ni saldos, ni kardex, ni estados
	assert.True(t, s.products["steel"].Stock.Equal(d("10")), "el acero ya descontado debe volver a 10")
	assert.True(t, s.products["bolt"].Stock.Equal(d("7")))
	assert.True(t, s.products["gear"].Stock.Equal(decimal.Zero))
	assert.Len(t, s.entriesFor("steel"), 1, "solo el asiento seed")
	assert.Empty(t, s.entriesFor("gear"))
	assert.Equal(t, entity.WOStatusStarted, s.wos["wo-1"].Status)
	assert.Equal(t, entity.MOStateInProgress, s.mos["mo-1"].State)

	// Sin evento: no hubo commit
	assert.Equal(t, 0, notifier.count())
}

func TestComplete_ProductoSuelto_SoloAltaDelTerminado(t *testing.T) {
	// Orden sin receta congelada (producto suelto): completar no consume nada.
	s := newMemStore()
	s.seedProduct("widget", "Widget", decimal.Zero)
	s.mos["mo-1"] = &entity.ManufacturingOrder{
		ID: "mo-1", OrderNo: "MO-1", ProductID: "widget",
		Quantity: d("3"), State: entity.MOStatePlanned,
	}
	s.wos["wo-1"] = &entity.WorkOrder{ID: "wo-1", MOID: "mo-1", Status: entity.WOStatusPending}
	uc := manufacturing.NewCompleteWorkOrderUseCase(&fakeTxRunner{store: s}, manufacturing.NopNotifier{}, nil)

	require.NoError(t, uc.Complete(context.Background(), "wo-1"))

	assert.True(t, s.products["widget"].Stock.Equal(d("3")))
	require.Len(t, s.entries, 1)
	assert.Equal(t, entity.StockEntryIn, s.entries[0].Type)
	assert.Equal(t, entity.WOStatusCompleted, s.wos["wo-1"].Status)
}

func TestComplete_DobleCompletado_EsIdempotente(t *testing.T) {
	s, tx := buildCompletionFixture("10", "20")
	notifier := &recordingNotifier{}
	uc := manufacturing.NewCompleteWorkOrderUseCase(tx, notifier, nil)

	require.NoError(t, uc.Complete(context.Background(), "wo-1"))
	entriesAfterFirst := len(s.entries)

	// Segundo completado: éxito sin efectos
	require.NoError(t, uc.Complete(context.Background(), "wo-1"))

	assert.Len(t, s.entries, entriesAfterFirst, "el segundo completado no debe crear asientos")
	assert.True(t, s.products["steel"].Stock.Equal(d("5")), "el acero no debe descontarse dos veces")
	assert.True(t, s.products["gear"].Stock.Equal(d("2")), "el terminado no debe duplicarse")
	assert.Equal(t, 1, notifier.count(), "un completado repetido no re-emite el evento")
}

func TestComplete_OrdenInexistente(t *testing.T) {
	s := newMemStore()
	uc := manufacturing.NewCompleteWorkOrderUseCase(&fakeTxRunner{store: s}, manufacturing.NopNotifier{}, nil)

	err := uc.Complete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete_IDVacio(t *testing.T) {
	s := newMemStore()
	uc := manufacturing.NewCompleteWorkOrderUseCase(&fakeTxRunner{store: s}, manufacturing.NopNotifier{}, nil)

	err := uc.Complete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_NotificadorCaido_NoAfectaElResultado(t *testing.T) {
	s, tx := buildCompletionFixture("10", "20")
	uc := manufacturing.NewCompleteWorkOrderUseCase(tx, panicNotifier{}, nil)

	// El pánico del transporte se recupera: la transacción ya confirmó y el
	// caller recibe éxito.
	require.NoError(t, uc.Complete(context.Background(), "wo-1"))
	assert.Equal(t, entity.WOStatusCompleted, s.wos["wo-1"].Status)
	assert.True(t, s.products["gear"].Stock.Equal(d("2")))
}
