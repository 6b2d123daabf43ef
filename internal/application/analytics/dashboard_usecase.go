// Package analytics contiene los casos de uso de reportes de negocio y el
// dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	appinventory "github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

const dashboardTopProducts = 5 // productos en el ranking de ganancia

// DashboardUseCase genera las estadísticas del inventario: valor total del
// stock y top de productos por ganancia FIFO.
//
// Recorrido O(productos × movimientos) sin caché; suficiente para los
// volúmenes esperados y el techo de escalabilidad conocido de este diseño.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	profitUC    *appinventory.ProfitUseCase
	log         *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, profitUC *appinventory.ProfitUseCase, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, profitUC: profitUC, log: log}
}

// GetStats construye el DashboardStatsDTO.
//
// Dos cálculos en paralelo sobre la misma lista de productos:
//  1. Valor total del stock: sum(StockQuantity * SupplierValue)
//  2. Ranking de ganancia: CalculateProfit por producto; ganancia > 0,
//     orden descendente estable, top 5.
//
// Un producto cuyo historial no se puede cruzar (entradas insuficientes por
// inconsistencias históricas) se excluye del ranking en lugar de abortar el
// reporte completo.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}

	valueCh := make(chan decimal.Decimal, 1)
	rankingCh := make(chan []dto.ProductProfitDTO, 1)

	go func() {
		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.SupplierValue.Mul(decimal.NewFromInt(p.StockQuantity)))
		}
		valueCh <- total
	}()
	go func() {
		rankingCh <- uc.rankByProfit(ctx, products)
	}()

	return &dto.DashboardStatsDTO{
		TotalStockValue:   <-valueCh,
		TopProfitProducts: <-rankingCh,
	}, nil
}

// rankByProfit calcula la ganancia de cada producto y arma el top-5.
// El orden relativo de empates se preserva (sort estable sobre el orden de
// entrada de ListAll).
func (uc *DashboardUseCase) rankByProfit(ctx context.Context, products []*entity.Product) []dto.ProductProfitDTO {
	ranking := make([]dto.ProductProfitDTO, 0, len(products))
	for _, p := range products {
		result, err := uc.profitUC.CalculateProfit(ctx, p.ID)
		if err != nil {
			// Política de falla parcial: degradar el ranking, nunca abortar el reporte
			uc.log.Warn().Err(err).Str("product_id", p.ID).Msg("producto excluido del ranking")
			continue
		}
		if !result.Profit.GreaterThan(decimal.Zero) {
			continue
		}
		ranking = append(ranking, dto.ProductProfitDTO{
			ProductID:    p.ID,
			Code:         p.Code,
			Description:  p.Description,
			TotalProfit:  result.Profit,
			QuantitySold: result.QuantitySold,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalProfit.GreaterThan(ranking[j].TotalProfit)
	})
	if len(ranking) > dashboardTopProducts {
		ranking = ranking[:dashboardTopProducts]
	}
	return ranking
}
