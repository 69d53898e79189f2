package manufacturing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// WorkOrderUseCase alta, consulta, comentarios y transición PENDING→STARTED de
// órdenes de trabajo. La transición a COMPLETED vive en CompleteWorkOrderUseCase.
type WorkOrderUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	moRepo      repository.ManufacturingOrderRepository
	woRepo      repository.WorkOrderRepository
	pdfGen      TravelerPDFGenerator
	notifier    Notifier
}

// NewWorkOrderUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la hoja viajera.
func NewWorkOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	moRepo repository.ManufacturingOrderRepository,
	woRepo repository.WorkOrderRepository,
	pdfGen TravelerPDFGenerator,
	notifier Notifier,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		moRepo:      moRepo,
		woRepo:      woRepo,
		pdfGen:      pdfGen,
		notifier:    notifier,
	}
}

// Create da de alta una orden de fabricación con su orden de trabajo:
//  1. Busca el producto por nombre; si no existe lo crea con SKU generado.
//  2. Crea la MO (PLANNED) y congela sobre ella la receta activa del producto.
//  3. Crea la WO (PENDING) asignada al usuario que la pidió.
//
// Todo dentro de una transacción; al commit emite work-order:created.
// La foto congelada es la fuente de verdad de materiales al completar: editar
// la receta después no cambia lo que esta orden va a consumir.
func (uc *WorkOrderUseCase) Create(ctx context.Context, userID string, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.ProductName == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	switch priority {
	case entity.WOPriorityLow, entity.WOPriorityMedium, entity.WOPriorityHigh:
	case "":
		priority = entity.WOPriorityMedium
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var (
		product *entity.Product
		mo      *entity.ManufacturingOrder
		wo      *entity.WorkOrder
	)
	err := uc.txRunner.RunManufacturing(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockEntryRepository,
		bomRepo repository.BOMRepository,
		moRepo repository.ManufacturingOrderRepository,
		woRepo repository.WorkOrderRepository,
	) error {
		var err error
		product, err = productRepo.GetByName(in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			product = &entity.Product{
				ID:        uuid.New().String(),
				SKU:       fmt.Sprintf("SKU-%04d", rand.Intn(10000)),
				Name:      in.ProductName,
				Category:  "GENERADO",
				Stock:     decimal.Zero,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
		}

		// Foto congelada de la receta activa (vacía si el producto es suelto)
		bom, err := bomRepo.GetActiveByProduct(product.ID)
		if err != nil {
			return err
		}
		moID := uuid.New().String()
		var lines []entity.MOBOMLine
		if bom != nil {
			lines = make([]entity.MOBOMLine, 0, len(bom.Components))
			for _, c := range bom.Components {
				lines = append(lines, entity.MOBOMLine{
					ID:              uuid.New().String(),
					MOID:            moID,
					ComponentID:     c.ComponentID,
					QuantityPerUnit: c.QuantityPerUnit,
					Position:        c.Position,
				})
			}
		}

		mo = &entity.ManufacturingOrder{
			ID:        moID,
			OrderNo:   fmt.Sprintf("MO-%d", now.UnixMilli()),
			Name:      "Orden para " + in.ProductName,
			ProductID: product.ID,
			Quantity:  in.Quantity,
			State:     entity.MOStatePlanned,
			Deadline:  in.Deadline,
			BOMLines:  lines,
			CreatedAt: now,
		}
		if err := moRepo.Create(mo); err != nil {
			return err
		}

		assignedTo := userID
		wo = &entity.WorkOrder{
			ID:           uuid.New().String(),
			MOID:         moID,
			Title:        "Ensamblar " + in.ProductName,
			Status:       entity.WOStatusPending,
			Priority:     priority,
			AssignedToID: &assignedTo,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return woRepo.Create(wo)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(EventWorkOrderCreated, Event{
		ID:      mo.ID,
		Message: "Nueva orden para " + in.ProductName,
	})
	return toWorkOrderResponse(wo, mo, product), nil
}

// Start transiciona PENDING→STARTED: actualización simple de campos, sin efecto
// alguno sobre inventario. La MO pasa a IN_PROGRESS.
func (uc *WorkOrderUseCase) Start(ctx context.Context, workOrderID string) error {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	if wo.Status == entity.WOStatusCompleted {
		return domain.ErrConflict
	}
	if err := uc.woRepo.UpdateStatus(workOrderID, entity.WOStatusStarted); err != nil {
		return err
	}
	if err := uc.moRepo.UpdateState(wo.MOID, entity.MOStateInProgress); err != nil {
		return err
	}
	uc.notifier.Notify(EventWorkOrderUpdated, Event{
		ID:      workOrderID,
		Message: "Orden iniciada",
		Status:  entity.WOStatusStarted,
	})
	return nil
}

// List devuelve órdenes de trabajo con su MO y producto.
func (uc *WorkOrderUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.WorkOrderResponse, error) {
	page.DefaultPage()
	wos, err := uc.woRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderResponse, 0, len(wos))
	for _, wo := range wos {
		mo, err := uc.moRepo.GetByID(wo.MOID)
		if err != nil {
			return nil, err
		}
		if mo == nil {
			continue
		}
		product, err := uc.productRepo.GetByID(mo.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		out = append(out, *toWorkOrderResponse(wo, mo, product))
	}
	return out, nil
}

// Get devuelve una orden de trabajo con su MO y producto.
func (uc *WorkOrderUseCase) Get(ctx context.Context, workOrderID string) (*dto.WorkOrderResponse, error) {
	wo, mo, product, err := uc.load(workOrderID)
	if err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo, mo, product), nil
}

// AddComment agrega un comentario con marca de tiempo a la orden.
func (uc *WorkOrderUseCase) AddComment(ctx context.Context, workOrderID, authorID, body string) (*dto.CommentResponse, error) {
	if body == "" {
		return nil, domain.ErrInvalidInput
	}
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	comment := &entity.WorkOrderComment{
		ID:          uuid.New().String(),
		WorkOrderID: workOrderID,
		AuthorID:    authorID,
		Body:        body,
		CreatedAt:   time.Now(),
	}
	if err := uc.woRepo.AddComment(comment); err != nil {
		return nil, err
	}
	return &dto.CommentResponse{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// ListComments lista los comentarios de la orden en orden cronológico.
func (uc *WorkOrderUseCase) ListComments(ctx context.Context, workOrderID string) ([]dto.CommentResponse, error) {
	comments, err := uc.woRepo.ListComments(workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.CommentResponse{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

// TravelerPDF genera la hoja viajera imprimible de la orden: encabezado de la
// orden y requerimientos de materiales según la foto congelada.
func (uc *WorkOrderUseCase) TravelerPDF(ctx context.Context, workOrderID string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	wo, mo, product, err := uc.load(workOrderID)
	if err != nil {
		return nil, err
	}
	reqs := manufacturing.ComputeRequirements(mo.BOMLines, mo.Quantity)
	travelerReqs := make([]TravelerRequirement, 0, len(reqs))
	for i, req := range reqs {
		component, err := uc.productRepo.GetByID(req.ComponentID)
		if err != nil {
			return nil, err
		}
		name, sku := req.ComponentID, ""
		if component != nil {
			name, sku = component.Name, component.SKU
		}
		travelerReqs = append(travelerReqs, TravelerRequirement{
			ComponentName: name,
			ComponentSKU:  sku,
			PerUnit:       mo.BOMLines[i].QuantityPerUnit,
			Required:      req.Required,
		})
	}
	return uc.pdfGen.GenerateTravelerPDF(ctx, TravelerData{
		WorkOrder:    wo,
		Order:        mo,
		ProductName:  product.Name,
		Requirements: travelerReqs,
	})
}

func (uc *WorkOrderUseCase) load(workOrderID string) (*entity.WorkOrder, *entity.ManufacturingOrder, *entity.Product, error) {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if wo == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	mo, err := uc.moRepo.GetByID(wo.MOID)
	if err != nil {
		return nil, nil, nil, err
	}
	if mo == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(mo.ProductID)
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	return wo, mo, product, nil
}

func toWorkOrderResponse(wo *entity.WorkOrder, mo *entity.ManufacturingOrder, product *entity.Product) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:           wo.ID,
		Title:        wo.Title,
		Status:       wo.Status,
		Priority:     wo.Priority,
		MOID:         mo.ID,
		OrderNo:      mo.OrderNo,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     mo.Quantity,
		State:        mo.State,
		Deadline:     mo.Deadline,
		WorkCenterID: wo.WorkCenterID,
		AssignedToID: wo.AssignedToID,
		CreatedAt:    wo.CreatedAt,
	}
}
