// Package inventory contiene el motor de cruce de costos FIFO (servicio de
// dominio puro, sin dependencias de persistencia).
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// ProfitResult resultado del cálculo de ganancia de un producto.
// Profit = Revenue - Cost.
type ProfitResult struct {
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
	QuantitySold int64
}

// costLayer es una capa de costo creada por una entrada: unidades restantes a
// un costo unitario. Las salidas consumen capas de la más antigua a la más nueva.
type costLayer struct {
	remaining int64
	unitCost  decimal.Decimal
}

// layerQueue cola FIFO de capas de costo sobre slice propio (pop-front por
// índice de cabeza, push-back por append). Cada cálculo opera sobre su propia
// cola; nada se comparte entre llamadas concurrentes.
type layerQueue struct {
	layers []costLayer
	head   int
}

func (q *layerQueue) push(quantity int64, unitCost decimal.Decimal) {
	q.layers = append(q.layers, costLayer{remaining: quantity, unitCost: unitCost})
}

func (q *layerQueue) empty() bool {
	return q.head >= len(q.layers)
}

func (q *layerQueue) front() *costLayer {
	return &q.layers[q.head]
}

func (q *layerQueue) pop() {
	q.head++
}

// CalculateProfit reproduce el historial de movimientos de un producto y cruza
// cada salida contra las capas de costo de entrada más antiguas (FIFO).
//
// Los movimientos deben venir ordenados por fecha ascendente (desempate
// estable por orden de inserción); el repositorio garantiza ese orden.
//
// Forma canónica en dos pasadas: primero se construyen todas las capas de
// costo a partir de las entradas en orden cronológico, luego se recorren las
// salidas en orden cronológico consumiendo la capa más antigua disponible.
//
// Fallbacks de precio: una entrada sin PurchaseValue usa el SupplierValue del
// producto como costo de capa; una salida sin SaleValue usa el SupplierValue
// como precio de venta.
//
// Si una salida agota la cola con unidades pendientes, retorna
// *domain.InsufficientEntryStockError (errors.Is con ErrInsufficientEntryStock)
// indicando las unidades que no pudieron cruzarse.
func CalculateProfit(product *entity.Product, movements []*entity.StockMovement) (ProfitResult, error) {
	zero := ProfitResult{
		Revenue: decimal.Zero,
		Cost:    decimal.Zero,
		Profit:  decimal.Zero,
	}
	if len(movements) == 0 {
		return zero, nil
	}

	var queue layerQueue
	for _, mov := range movements {
		if mov.Type != entity.MovementTypeIN {
			continue
		}
		unitCost := product.SupplierValue
		if mov.PurchaseValue != nil {
			unitCost = *mov.PurchaseValue
		}
		queue.push(mov.Quantity, unitCost)
	}

	revenue := decimal.Zero
	cost := decimal.Zero
	var totalSold int64

	for _, mov := range movements {
		if mov.Type != entity.MovementTypeOUT {
			continue
		}
		salePrice := product.SupplierValue
		if mov.SaleValue != nil {
			salePrice = *mov.SaleValue
		}
		revenue = revenue.Add(salePrice.Mul(decimal.NewFromInt(mov.Quantity)))
		totalSold += mov.Quantity

		remaining := mov.Quantity
		for remaining > 0 && !queue.empty() {
			layer := queue.front()
			consumed := remaining
			if layer.remaining < consumed {
				consumed = layer.remaining
			}
			cost = cost.Add(layer.unitCost.Mul(decimal.NewFromInt(consumed)))
			remaining -= consumed
			layer.remaining -= consumed
			if layer.remaining == 0 {
				queue.pop()
			}
		}
		if remaining > 0 {
			return zero, &domain.InsufficientEntryStockError{
				ProductID: product.ID,
				Requested: mov.Quantity,
				Matched:   mov.Quantity - remaining,
			}
		}
	}

	return ProfitResult{
		Revenue:      revenue,
		Cost:         cost,
		Profit:       revenue.Sub(cost),
		QuantitySold: totalSold,
	}, nil
}
