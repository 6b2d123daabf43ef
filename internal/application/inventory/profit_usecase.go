package inventory

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain"
	domaininv "github.com/jhoicas/Stock-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// ProfitUseCase calcula la ganancia realizada de un producto reproduciendo su
// historial de movimientos con el motor FIFO de dominio.
//
// Lectura pura: no toma locks. Cada llamada opera sobre el snapshot del
// historial que leyó; consultas concurrentes mientras se registran movimientos
// pueden ver respuestas distintas, y eso es aceptado.
type ProfitUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewProfitUseCase construye el caso de uso.
func NewProfitUseCase(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *ProfitUseCase {
	return &ProfitUseCase{productRepo: productRepo, movRepo: movRepo}
}

// CalculateProfit carga el historial completo del producto (orden cronológico
// ascendente, desempate estable) y devuelve revenue, cost, profit y unidades
// vendidas. Retorna ErrNotFound si el producto no existe y propaga
// *domain.InsufficientEntryStockError del motor FIFO.
func (uc *ProfitUseCase) CalculateProfit(_ context.Context, productID string) (domaininv.ProfitResult, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return domaininv.ProfitResult{}, err
	}
	if product == nil {
		return domaininv.ProfitResult{}, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return domaininv.ProfitResult{}, err
	}
	return domaininv.CalculateProfit(product, movements)
}
