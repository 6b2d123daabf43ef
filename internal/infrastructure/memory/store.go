// Package memory implementa los puertos de persistencia en memoria, con la
// misma semántica transaccional del adaptador PostgreSQL (serialización de
// escrituras y rollback ante error). Lo usan las pruebas de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// Store estado compartido: productos por ID (con orden de inserción estable)
// y el libro de movimientos en orden de inserción.
type Store struct {
	mu           sync.Mutex
	products     map[string]entity.Product
	productOrder []string
	movements    []entity.StockMovement
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{products: make(map[string]entity.Product)}
}

// ProductRepository devuelve el adaptador de productos (toma el lock por operación).
func (s *Store) ProductRepository() repository.ProductRepository {
	return &productRepo{store: s, locking: true}
}

// MovementRepository devuelve el adaptador de movimientos (toma el lock por operación).
func (s *Store) MovementRepository() repository.StockMovementRepository {
	return &movementRepo{store: s, locking: true}
}

// TxRunner devuelve un runner que serializa transacciones con el lock del
// store y restaura el estado previo si el callback falla. Equivale al
// Begin/Commit/Rollback + lock de fila del adaptador PostgreSQL, con la
// granularidad gruesa de un único lock global.
func (s *Store) TxRunner() inventory.TxRunner {
	return &txRunner{store: s}
}

type txRunner struct {
	store *Store
}

func (r *txRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot para rollback
	prevProducts := make(map[string]entity.Product, len(s.products))
	for id, p := range s.products {
		prevProducts[id] = p
	}
	prevOrder := append([]string(nil), s.productOrder...)
	prevMovements := append([]entity.StockMovement(nil), s.movements...)

	err := fn(&movementRepo{store: s}, &productRepo{store: s})
	if err != nil {
		s.products = prevProducts
		s.productOrder = prevOrder
		s.movements = prevMovements
		return err
	}
	return nil
}
