package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	// Valor total del inventario: sum(stock_quantity * supplier_value)
	TotalStockValue decimal.Decimal `json:"total_stock_value"`

	// Top 5 productos por ganancia FIFO (solo ganancia > 0, descendente)
	TopProfitProducts []ProductProfitDTO `json:"top_profit_products"`
}

// ProductProfitDTO resumen de ganancia de un producto para el ranking.
type ProductProfitDTO struct {
	ProductID    string          `json:"product_id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	QuantitySold int64           `json:"quantity_sold"`
}
