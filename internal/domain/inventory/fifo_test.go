package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/inventory"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:            "prod-1",
		Code:          "COD-001",
		Description:   "Producto de prueba",
		Type:          "ELECTRONIC",
		SupplierValue: decimal.NewFromInt(100),
	}
}

func entry(day int, qty int64, purchase *decimal.Decimal) *entity.StockMovement {
	return &entity.StockMovement{
		ProductID:     "prod-1",
		Type:          entity.MovementTypeIN,
		Quantity:      qty,
		PurchaseValue: purchase,
		MovementDate:  time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func exit(day int, qty int64, sale *decimal.Decimal) *entity.StockMovement {
	return &entity.StockMovement{
		ProductID:    "prod-1",
		Type:         entity.MovementTypeOUT,
		Quantity:     qty,
		SaleValue:    sale,
		MovementDate: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

// TestCalculateProfit_CruceFIFO valida el cruce de capas con consumo parcial:
// dos entradas (10 @ 3000, 5 @ 3500) y dos salidas (8 @ 5800, 4 @ 6000).
// La segunda salida consume el resto de la primera capa (2 @ 3000) y parte de
// la segunda (2 @ 3500).
func TestCalculateProfit_CruceFIFO(t *testing.T) {
	movements := []*entity.StockMovement{
		entry(1, 10, dec(3000)),
		entry(2, 5, dec(3500)),
		exit(3, 8, dec(5800)),
		exit(4, 4, dec(6000)),
	}

	result, err := inventory.CalculateProfit(testProduct(), movements)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(70400).Equal(result.Revenue), "revenue = 8*5800 + 4*6000")
	assert.True(t, decimal.NewFromInt(37000).Equal(result.Cost), "cost = 8*3000 + 2*3000 + 2*3500")
	assert.True(t, decimal.NewFromInt(33400).Equal(result.Profit))
	assert.Equal(t, int64(12), result.QuantitySold)
}

// TestCalculateProfit_SinMovimientos: historial vacío no es error, todo en cero.
func TestCalculateProfit_SinMovimientos(t *testing.T) {
	result, err := inventory.CalculateProfit(testProduct(), nil)
	require.NoError(t, err)

	assert.True(t, result.Revenue.IsZero())
	assert.True(t, result.Cost.IsZero())
	assert.True(t, result.Profit.IsZero())
	assert.Equal(t, int64(0), result.QuantitySold)
}

// TestCalculateProfit_SoloEntradas: sin ventas la ganancia es cero, no un error.
func TestCalculateProfit_SoloEntradas(t *testing.T) {
	movements := []*entity.StockMovement{
		entry(1, 5, dec(100)),
		entry(2, 3, dec(120)),
	}

	result, err := inventory.CalculateProfit(testProduct(), movements)
	require.NoError(t, err)

	assert.True(t, result.Profit.IsZero())
	assert.Equal(t, int64(0), result.QuantitySold)
}

// TestCalculateProfit_EntradasInsuficientes: entradas por 2 unidades y salida
// de 5 debe fallar reportando las unidades que no se cruzaron.
func TestCalculateProfit_EntradasInsuficientes(t *testing.T) {
	movements := []*entity.StockMovement{
		entry(1, 2, dec(100)),
		exit(2, 5, dec(150)),
	}

	_, err := inventory.CalculateProfit(testProduct(), movements)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientEntryStock))

	var entryErr *domain.InsufficientEntryStockError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, int64(5), entryErr.Requested)
	assert.Equal(t, int64(2), entryErr.Matched)
	assert.Equal(t, int64(3), entryErr.Unmatched())
}

// TestCalculateProfit_SoloSalidas: salida sin ninguna entrada previa falla en
// la primera salida.
func TestCalculateProfit_SoloSalidas(t *testing.T) {
	movements := []*entity.StockMovement{
		exit(1, 1, dec(150)),
	}

	_, err := inventory.CalculateProfit(testProduct(), movements)
	assert.True(t, errors.Is(err, domain.ErrInsufficientEntryStock))
}

// TestCalculateProfit_FallbackSupplierValue: entrada sin valor de compra y
// salida sin valor de venta usan el SupplierValue del producto (100).
func TestCalculateProfit_FallbackSupplierValue(t *testing.T) {
	movements := []*entity.StockMovement{
		entry(1, 2, nil),           // capa a 100 (supplier)
		exit(2, 2, dec(150)),       // revenue 300, cost 200
		entry(3, 1, dec(80)),       // capa a 80
		exit(4, 1, nil),            // venta al supplier value: revenue 100, cost 80
	}

	result, err := inventory.CalculateProfit(testProduct(), movements)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(400).Equal(result.Revenue))
	assert.True(t, decimal.NewFromInt(280).Equal(result.Cost))
	assert.True(t, decimal.NewFromInt(120).Equal(result.Profit))
	assert.Equal(t, int64(3), result.QuantitySold)
}

// TestCalculateProfit_Determinista: el mismo historial produce siempre el
// mismo resultado (el cálculo no muta los movimientos de entrada).
func TestCalculateProfit_Determinista(t *testing.T) {
	movements := []*entity.StockMovement{
		entry(1, 10, dec(3000)),
		entry(2, 5, dec(3500)),
		exit(3, 8, dec(5800)),
		exit(4, 4, dec(6000)),
	}
	product := testProduct()

	r1, err1 := inventory.CalculateProfit(product, movements)
	r2, err2 := inventory.CalculateProfit(product, movements)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, r1.Revenue.Equal(r2.Revenue))
	assert.True(t, r1.Cost.Equal(r2.Cost))
	assert.True(t, r1.Profit.Equal(r2.Profit))
	assert.Equal(t, r1.QuantitySold, r2.QuantitySold)
}

// TestCalculateProfit_DecimalesExactos: los montos con centavos no acumulan
// deriva binaria (10 unidades a 0.10 cuestan exactamente 1.00).
func TestCalculateProfit_DecimalesExactos(t *testing.T) {
	cost := decimal.RequireFromString("0.10")
	sale := decimal.RequireFromString("0.30")
	movements := []*entity.StockMovement{
		entry(1, 10, &cost),
		exit(2, 10, &sale),
	}

	result, err := inventory.CalculateProfit(testProduct(), movements)
	require.NoError(t, err)

	assert.Equal(t, "1", result.Cost.String())
	assert.Equal(t, "3", result.Revenue.String())
	assert.Equal(t, "2", result.Profit.String())
}
