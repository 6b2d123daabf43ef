package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Code es la clave de negocio (única e inmutable); SupplierValue el costo de
// proveedor usado como fallback en el cruce FIFO; StockQuantity se mantiene
// exclusivamente vía movimientos (nunca se edita directo).
type Product struct {
	ID            string
	Code          string
	Description   string
	Type          string // categoría: ELECTRONIC, APPLIANCE, FURNITURE, ...
	SupplierValue decimal.Decimal
	StockQuantity int64 // siempre >= 0
	Version       int64 // token optimista; se incrementa en cada escritura de stock
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
