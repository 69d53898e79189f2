package dto

import "github.com/shopspring/decimal"

// CreateWorkCenterRequest body para POST /api/work-centers.
type CreateWorkCenterRequest struct {
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Capacity    int             `json:"capacity"`
	CostPerHour decimal.Decimal `json:"cost_per_hour"`
}

// UpdateWorkCenterStatusRequest body para PATCH /api/work-centers/:id/status.
type UpdateWorkCenterStatusRequest struct {
	Status string `json:"status"` // AVAILABLE | BUSY | MAINTENANCE
}

// WorkCenterResponse centro de trabajo con su carga actual.
type WorkCenterResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Capacity    int             `json:"capacity"`
	CostPerHour decimal.Decimal `json:"cost_per_hour"`
	Status      string          `json:"status"`
	ActiveWOs   int             `json:"active_work_orders"`
}
