package manufacturing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

func newWorkOrderUC(s *memStore, notifier manufacturing.Notifier) *manufacturing.WorkOrderUseCase {
	return manufacturing.NewWorkOrderUseCase(
		&fakeTxRunner{store: s},
		&fakeProductRepo{s: s},
		&fakeMORepo{s: s},
		&fakeWORepo{s: s},
		nil,
		notifier,
	)
}

func TestCrearOrden_CongelaLaRecetaActiva(t *testing.T) {
	s := newMemStore()
	s.seedProduct("gear", "Engranaje", decimal.Zero)
	s.seedProduct("steel", "Acero", d("100"))
	s.boms["bom-1"] = &entity.BOM{
		ID: "bom-1", ProductID: "gear", Version: 1, Active: true,
		Components: []entity.BOMComponent{
			{ID: "c1", BOMID: "bom-1", ComponentID: "steel", QuantityPerUnit: d("2.5"), Position: 0},
		},
	}
	notifier := &recordingNotifier{}
	uc := newWorkOrderUC(s, notifier)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateWorkOrderRequest{
		ProductName: "Engranaje",
		Quantity:    d("4"),
		Priority:    entity.WOPriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ensamblar Engranaje", resp.Title)
	assert.Equal(t, entity.WOStatusPending, resp.Status)
	assert.Equal(t, entity.WOPriorityHigh, resp.Priority)
	assert.True(t, strings.HasPrefix(resp.OrderNo, "MO-"), "número de orden con prefijo MO-: %s", resp.OrderNo)
	require.NotNil(t, resp.AssignedToID)
	assert.Equal(t, "user-1", *resp.AssignedToID)

	// La MO congeló la receta activa
	mo := s.mos[resp.MOID]
	require.NotNil(t, mo)
	require.Len(t, mo.BOMLines, 1)
	assert.Equal(t, "steel", mo.BOMLines[0].ComponentID)
	assert.True(t, mo.BOMLines[0].QuantityPerUnit.Equal(d("2.5")))

	// Editar la receta después NO altera la foto congelada
	s.boms["bom-1"].Components[0].QuantityPerUnit = d("99")
	assert.True(t, s.mos[resp.MOID].BOMLines[0].QuantityPerUnit.Equal(d("2.5")),
		"la foto congelada no debe seguir a la receta viva")

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, manufacturing.EventWorkOrderCreated, notifier.events[0].Event)
}

func TestCrearOrden_ProductoNuevo_SeCreaSobreLaMarcha(t *testing.T) {
	s := newMemStore()
	uc := newWorkOrderUC(s, manufacturing.NopNotifier{})

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateWorkOrderRequest{
		ProductName: "Prototipo X",
		Quantity:    d("1"),
	})
	require.NoError(t, err)

	created := s.products[resp.ProductID]
	require.NotNil(t, created, "el producto debe crearse en la misma transacción")
	assert.Equal(t, "Prototipo X", created.Name)
	assert.Equal(t, "GENERADO", created.Category)
	assert.True(t, created.Stock.IsZero())

	// Sin receta: la foto congelada queda vacía
	assert.Empty(t, s.mos[resp.MOID].BOMLines)
	// Prioridad por defecto
	assert.Equal(t, entity.WOPriorityMedium, resp.Priority)
}

func TestCrearOrden_Validacion(t *testing.T) {
	s := newMemStore()
	uc := newWorkOrderUC(s, manufacturing.NopNotifier{})

	cases := []struct {
		name string
		in   dto.CreateWorkOrderRequest
	}{
		{"sin nombre", dto.CreateWorkOrderRequest{Quantity: d("1")}},
		{"cantidad cero", dto.CreateWorkOrderRequest{ProductName: "X", Quantity: decimal.Zero}},
		{"cantidad negativa", dto.CreateWorkOrderRequest{ProductName: "X", Quantity: d("-2")}},
		{"prioridad desconocida", dto.CreateWorkOrderRequest{ProductName: "X", Quantity: d("1"), Priority: "URGENTE"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), "user-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, s.mos, "nada debe persistirse")
		})
	}
}

func TestIniciarOrden_SinEfectoSobreInventario(t *testing.T) {
	s, _ := buildCompletionFixture("10", "20")
	s.wos["wo-1"].Status = entity.WOStatusPending
	s.mos["mo-1"].State = entity.MOStatePlanned
	notifier := &recordingNotifier{}
	uc := newWorkOrderUC(s, notifier)

	entriesBefore := len(s.entries)
	require.NoError(t, uc.Start(context.Background(), "wo-1"))

	assert.Equal(t, entity.WOStatusStarted, s.wos["wo-1"].Status)
	assert.Equal(t, entity.MOStateInProgress, s.mos["mo-1"].State)
	assert.Len(t, s.entries, entriesBefore, "iniciar no toca el kardex")
	assert.True(t, s.products["steel"].Stock.Equal(d("10")))
	require.Equal(t, 1, notifier.count())
	assert.Equal(t, entity.WOStatusStarted, notifier.events[0].Payload.Status)
}

func TestIniciarOrden_YaCompletada_Conflicto(t *testing.T) {
	s, _ := buildCompletionFixture("10", "20")
	s.wos["wo-1"].Status = entity.WOStatusCompleted
	uc := newWorkOrderUC(s, manufacturing.NopNotifier{})

	err := uc.Start(context.Background(), "wo-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestComentarios_AgregarYListar(t *testing.T) {
	s, _ := buildCompletionFixture("10", "20")
	uc := newWorkOrderUC(s, manufacturing.NopNotifier{})

	c, err := uc.AddComment(context.Background(), "wo-1", "user-1", "Falta lubricante")
	require.NoError(t, err)
	assert.Equal(t, "Falta lubricante", c.Body)
	assert.Equal(t, "user-1", c.AuthorID)
	assert.WithinDuration(t, time.Now(), c.CreatedAt, time.Minute)

	_, err = uc.AddComment(context.Background(), "wo-1", "user-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.ListComments(context.Background(), "wo-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Falta lubricante", list[0].Body)
}
