package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// InitialStock > 0 genera el primer asiento del kardex ("Stock inicial").
type CreateProductRequest struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Category     string           `json:"category"`
	InitialStock decimal.Decimal  `json:"initial_stock"`
	MinStock     *decimal.Decimal `json:"min_stock,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments.
type AdjustStockRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // IN | OUT
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// ProductResponse producto en listados y detalle.
type ProductResponse struct {
	ID        string           `json:"id"`
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	Stock     decimal.Decimal  `json:"stock"`
	MinStock  *decimal.Decimal `json:"min_stock,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	LowStock  bool             `json:"low_stock"`
	CreatedAt time.Time        `json:"created_at"`
}

// StockEntryResponse asiento del kardex en el detalle de producto.
type StockEntryResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Change       decimal.Decimal `json:"change"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
