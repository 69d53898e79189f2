package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// InsufficientStockError detalla un faltante de stock: qué producto, cuánto se
// necesitaba y cuánto había. El caso de uso de completar órdenes lo devuelve para
// que el caller pueda mostrar el componente exacto que bloqueó la transacción.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Required    decimal.Decimal
	Available   decimal.Decimal
}

// Error implementa error.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: requerido %s, disponible %s",
		e.ProductID, e.Required.String(), e.Available.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
