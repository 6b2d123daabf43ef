package inventory

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el libro de movimientos.
type MovementQueryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementQueryUseCase) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// List lista movimientos con paginación (más recientes primero).
func (uc *MovementQueryUseCase) List(_ context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(normalizeLimit(limit), max(offset, 0))
}

// ListByProduct lista los movimientos de un producto con paginación.
func (uc *MovementQueryUseCase) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProductPaged(productID, normalizeLimit(limit), max(offset, 0))
}

// GroupedByProduct agrupa una página de movimientos por producto.
func (uc *MovementQueryUseCase) GroupedByProduct(ctx context.Context, limit, offset int) (map[string][]*entity.StockMovement, error) {
	movements, err := uc.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*entity.StockMovement, len(movements))
	for _, mov := range movements {
		grouped[mov.ProductID] = append(grouped[mov.ProductID], mov)
	}
	return grouped, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}
