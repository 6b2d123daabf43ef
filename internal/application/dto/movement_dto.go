package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ProductID     string           `json:"product_id"`
	Type          string           `json:"type"` // IN | OUT
	Quantity      int64            `json:"quantity"`
	SaleValue     *decimal.Decimal `json:"sale_value,omitempty"`     // obligatorio en OUT
	PurchaseValue *decimal.Decimal `json:"purchase_value,omitempty"` // opcional en IN
	Description   string           `json:"description,omitempty"`
}

// RegisterMovementResponse respuesta del alta de movimiento.
type RegisterMovementResponse struct {
	MovementID  string `json:"movement_id"`
	NewQuantity int64  `json:"new_quantity"`
	Message     string `json:"message"`
}

// MovementResponse representación JSON de un movimiento.
type MovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	Type          string           `json:"type"`
	Quantity      int64            `json:"quantity"`
	SaleValue     *decimal.Decimal `json:"sale_value,omitempty"`
	PurchaseValue *decimal.Decimal `json:"purchase_value,omitempty"`
	MovementDate  time.Time        `json:"movement_date"`
	Description   string           `json:"description,omitempty"`
}

// MovementToResponse mapea la entidad al DTO de salida.
func MovementToResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		SaleValue:     m.SaleValue,
		PurchaseValue: m.PurchaseValue,
		MovementDate:  m.MovementDate,
		Description:   m.Description,
	}
}

// ProfitResponse respuesta de GET /api/movements/profit/:productId.
type ProfitResponse struct {
	ProductID    string          `json:"product_id"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	QuantitySold int64           `json:"quantity_sold"`
}
