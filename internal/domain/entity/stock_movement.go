package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement representa un movimiento de stock (entrada o salida).
// Quantity siempre positiva; el tipo define el signo del efecto sobre el stock.
// SaleValue es obligatorio en OUT; PurchaseValue es opcional y solo tiene
// significado en IN (si falta, el motor FIFO usa el SupplierValue del producto).
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string
	Quantity      int64 // > 0
	SaleValue     *decimal.Decimal
	PurchaseValue *decimal.Decimal
	MovementDate  time.Time
	Description   string
	CreatedAt     time.Time
}

// IsEntry devuelve true si el movimiento suma stock.
func (m *StockMovement) IsEntry() bool {
	return m.Type == MovementTypeIN
}
