package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	SupplierValue decimal.Decimal `json:"supplier_value"`
	StockQuantity int64           `json:"stock_quantity"` // inicial, normalmente 0
}

// UpdateProductRequest body para PUT /api/products/:id.
// Code no se acepta: es clave de negocio inmutable. El stock tampoco: solo se
// mueve vía movimientos.
type UpdateProductRequest struct {
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	SupplierValue decimal.Decimal `json:"supplier_value"`
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	SupplierValue decimal.Decimal `json:"supplier_value"`
	StockQuantity int64           `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductToResponse mapea la entidad al DTO de salida.
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		Type:          p.Type,
		SupplierValue: p.SupplierValue,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
