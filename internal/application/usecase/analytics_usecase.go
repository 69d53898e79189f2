package usecase

import (
	"context"

	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

const dashboardPerformanceRows = 10 // últimas órdenes completadas en el widget

// AnalyticsUseCase arma el resumen del tablero: órdenes por estado, valor del
// inventario y desempeño (estimado vs real) de las últimas órdenes completadas.
// Solo lecturas; delega todo en AnalyticsRepository.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboardStats construye el DashboardStatsDTO.
func (uc *AnalyticsUseCase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	counts, err := uc.analyticsRepo.CountMOsByState()
	if err != nil {
		return nil, err
	}
	value, err := uc.analyticsRepo.InventoryValue()
	if err != nil {
		return nil, err
	}
	perf, err := uc.analyticsRepo.RecentPerformance(dashboardPerformanceRows)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		OrderStats:          make([]dto.OrderStateCountDTO, 0, len(counts)),
		TotalInventoryValue: value,
		Performance:         make([]dto.PerformanceDTO, 0, len(perf)),
	}
	for _, c := range counts {
		stats.OrderStats = append(stats.OrderStats, dto.OrderStateCountDTO{State: c.State, Count: c.Count})
	}
	for _, p := range perf {
		stats.Performance = append(stats.Performance, dto.PerformanceDTO{
			Title:            p.Title,
			EstimatedMinutes: p.EstimatedMinutes,
			ActualMinutes:    p.ActualMinutes,
		})
	}
	return stats, nil
}
