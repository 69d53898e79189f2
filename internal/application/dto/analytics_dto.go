package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen para el tablero de analítica.
type DashboardStatsDTO struct {
	OrderStats          []OrderStateCountDTO `json:"order_stats"`
	TotalInventoryValue decimal.Decimal      `json:"total_inventory_value"`
	Performance         []PerformanceDTO     `json:"performance"`
}

// OrderStateCountDTO conteo de órdenes de fabricación por estado.
type OrderStateCountDTO struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// PerformanceDTO minutos estimados vs reales de una orden completada.
type PerformanceDTO struct {
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	ActualMinutes    int    `json:"actual_minutes"`
}
