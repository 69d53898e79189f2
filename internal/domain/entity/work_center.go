package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un centro de trabajo.
const (
	WorkCenterAvailable   = "AVAILABLE"
	WorkCenterBusy        = "BUSY"
	WorkCenterMaintenance = "MAINTENANCE"
)

// WorkCenter es una estación física de producción con capacidad y costo por hora.
type WorkCenter struct {
	ID          string
	Name        string
	Location    string
	Capacity    int // órdenes simultáneas
	CostPerHour decimal.Decimal
	Status      string // AVAILABLE | BUSY | MAINTENANCE
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
