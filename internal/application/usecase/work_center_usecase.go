package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// WorkCenterUseCase administración de centros de trabajo.
type WorkCenterUseCase struct {
	wcRepo repository.WorkCenterRepository
}

// NewWorkCenterUseCase construye el caso de uso.
func NewWorkCenterUseCase(wcRepo repository.WorkCenterRepository) *WorkCenterUseCase {
	return &WorkCenterUseCase{wcRepo: wcRepo}
}

// Create da de alta un centro de trabajo en estado AVAILABLE.
func (uc *WorkCenterUseCase) Create(ctx context.Context, in dto.CreateWorkCenterRequest) (*dto.WorkCenterResponse, error) {
	if in.Name == "" || in.Capacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	wc := &entity.WorkCenter{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		Capacity:    in.Capacity,
		CostPerHour: in.CostPerHour,
		Status:      entity.WorkCenterAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.wcRepo.Create(wc); err != nil {
		return nil, err
	}
	return toWorkCenterResponse(wc, 0), nil
}

// List lista los centros con el conteo de órdenes de trabajo activas.
func (uc *WorkCenterUseCase) List(ctx context.Context) ([]dto.WorkCenterResponse, error) {
	rows, err := uc.wcRepo.ListWithLoad()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkCenterResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toWorkCenterResponse(r.WorkCenter, r.ActiveWOs))
	}
	return out, nil
}

// UpdateStatus cambia el estado del centro (AVAILABLE | BUSY | MAINTENANCE).
func (uc *WorkCenterUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.WorkCenterAvailable, entity.WorkCenterBusy, entity.WorkCenterMaintenance:
	default:
		return domain.ErrInvalidInput
	}
	wc, err := uc.wcRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wc == nil {
		return domain.ErrNotFound
	}
	return uc.wcRepo.UpdateStatus(id, status)
}

func toWorkCenterResponse(wc *entity.WorkCenter, activeWOs int) *dto.WorkCenterResponse {
	return &dto.WorkCenterResponse{
		ID:          wc.ID,
		Name:        wc.Name,
		Location:    wc.Location,
		Capacity:    wc.Capacity,
		CostPerHour: wc.CostPerHour,
		Status:      wc.Status,
		ActiveWOs:   activeWOs,
	}
}
