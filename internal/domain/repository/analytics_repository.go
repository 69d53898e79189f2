package repository

import "github.com/shopspring/decimal"

// MOStateCount conteo de órdenes de fabricación por estado.
type MOStateCount struct {
	State string
	Count int
}

// WorkOrderPerformance minutos estimados vs reales de una orden completada.
type WorkOrderPerformance struct {
	Title            string
	EstimatedMinutes int
	ActualMinutes    int
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	CountMOsByState() ([]MOStateCount, error)
	// InventoryValue calcula Σ(stock × precio) sobre todos los productos;
	// los productos sin precio no aportan.
	InventoryValue() (decimal.Decimal, error)
	// RecentPerformance devuelve las últimas órdenes completadas que registraron
	// tiempo estimado y real.
	RecentPerformance(limit int) ([]WorkOrderPerformance, error)
}
