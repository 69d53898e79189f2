package manufacturing

import (
	"context"
	"time"

	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
	"github.com/tu-usuario/manufacturing-pro/pkg/logger"
)

// CompleteWorkOrderUseCase ejecuta la transición a COMPLETED de una orden de
// trabajo: dentro de una sola transacción consume los componentes de la receta
// congelada, da de alta el producto terminado y cambia el estado de la orden.
// Tras el commit emite un evento best-effort hacia el tablero.
type CompleteWorkOrderUseCase struct {
	txRunner TxRunner
	notifier Notifier
	log      *logger.Logger
}

// NewCompleteWorkOrderUseCase construye el caso de uso. notifier nunca es nil:
// pasar NopNotifier si no hay canal realtime.
func NewCompleteWorkOrderUseCase(txRunner TxRunner, notifier Notifier, log *logger.Logger) *CompleteWorkOrderUseCase {
	return &CompleteWorkOrderUseCase{txRunner: txRunner, notifier: notifier, log: log}
}

// Complete marca la orden como COMPLETED.
//
// Guard de idempotencia: si la orden ya está COMPLETED devuelve éxito sin tocar
// inventario ni crear asientos. La fila de la orden se bloquea primero
// (SELECT FOR UPDATE) para que dos completados concurrentes de la misma orden
// se serialicen y el segundo vea el estado ya confirmado.
//
// Si cualquier componente no alcanza, la transacción entera se revierte:
// componentes ya descontados vuelven a su saldo previo y el estado no cambia.
func (uc *CompleteWorkOrderUseCase) Complete(ctx context.Context, workOrderID string) error {
	if workOrderID == "" {
		return domain.ErrInvalidInput
	}

	alreadyCompleted := false
	err := uc.txRunner.RunManufacturing(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		_ repository.BOMRepository,
		moRepo repository.ManufacturingOrderRepository,
		woRepo repository.WorkOrderRepository,
	) error {
		wo, err := woRepo.GetForUpdate(workOrderID)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if wo.Status == entity.WOStatusCompleted {
			alreadyCompleted = true
			return nil
		}

		mo, err := moRepo.GetByID(wo.MOID)
		if err != nil {
			return err
		}
		if mo == nil {
			return domain.ErrNotFound
		}

		// Bloquea el producto terminado antes de consumir componentes
		finished, err := productRepo.GetForUpdate(mo.ProductID)
		if err != nil {
			return err
		}
		if finished == nil {
			return domain.ErrNotFound
		}

		now := time.Now()

		// Consumo de materias primas según la foto congelada de la receta,
		// en orden de posición. ApplyAdjustment verifica suficiencia sobre la
		// fila bloqueada y falla con InsufficientStockError si no alcanza.
		reqs := manufacturing.ComputeRequirements(mo.BOMLines, mo.Quantity)
		for _, req := range reqs {
			component, err := productRepo.GetForUpdate(req.ComponentID)
			if err != nil {
				return err
			}
			if component == nil {
				return domain.ErrNotFound
			}
			_, err = inventory.ApplyAdjustment(productRepo, entryRepo, component,
				entity.StockEntryOut, req.Required, "Consumo por "+mo.OrderNo, now)
			if err != nil {
				return err
			}
		}

		// Alta del producto terminado
		_, err = inventory.ApplyAdjustment(productRepo, entryRepo, finished,
			entity.StockEntryIn, mo.Quantity, "Producción vía "+mo.OrderNo, now)
		if err != nil {
			return err
		}

		if err := woRepo.UpdateStatus(wo.ID, entity.WOStatusCompleted); err != nil {
			return err
		}
		return moRepo.UpdateState(mo.ID, entity.MOStateDone)
	})
	if err != nil {
		return err
	}

	// Broadcast solo después del commit; un completado repetido no re-emite.
	if !alreadyCompleted {
		uc.notify(EventWorkOrderUpdated, Event{
			ID:      workOrderID,
			Message: "Orden completada e inventario actualizado",
			Status:  entity.WOStatusCompleted,
		})
	}
	return nil
}

// notify emite sin dejar que un pánico o fallo del transporte escale al caller.
func (uc *CompleteWorkOrderUseCase) notify(event string, payload Event) {
	defer func() {
		if r := recover(); r != nil && uc.log != nil {
			uc.log.Warn().Interface("panic", r).Str("event", event).Msg("notificador realtime falló")
		}
	}()
	uc.notifier.Notify(event, payload)
}
