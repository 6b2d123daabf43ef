package repository

import "github.com/jhoicas/Stock-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	Update(movement *entity.StockMovement) error
	// ListByProduct devuelve el historial completo del producto ordenado por
	// fecha de movimiento ascendente, con desempate estable por created_at e id.
	// El motor FIFO depende de ese orden.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	ListByProductPaged(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	// DeleteByProduct elimina el historial de un producto (cascada al borrarlo).
	DeleteByProduct(productID string) error
}
