package memory

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*movementRepo)(nil)

// movementRepo adaptador en memoria del libro de movimientos.
type movementRepo struct {
	store   *Store
	locking bool
}

func (r *movementRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	defer r.lock()()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	r.store.movements = append(r.store.movements, *movement)
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	for i := range r.store.movements {
		if r.store.movements[i].ID == id {
			cp := r.store.movements[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *movementRepo) Update(movement *entity.StockMovement) error {
	defer r.lock()()
	for i := range r.store.movements {
		if r.store.movements[i].ID == movement.ID {
			updated := r.store.movements[i]
			updated.ProductID = movement.ProductID
			updated.Type = movement.Type
			updated.Quantity = movement.Quantity
			updated.SaleValue = movement.SaleValue
			updated.PurchaseValue = movement.PurchaseValue
			updated.Description = movement.Description
			r.store.movements[i] = updated
			return nil
		}
	}
	return nil
}

// ListByProduct orden cronológico ascendente; el desempate estable lo da el
// orden de inserción (sort estable sobre el slice append-ordenado).
func (r *movementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	defer r.lock()()
	filtered := r.filter(productID)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].MovementDate.Before(filtered[j].MovementDate)
	})
	return filtered, nil
}

func (r *movementRepo) ListByProductPaged(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	movements, err := r.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	reverse(movements)
	return paginate(movements, limit, offset), nil
}

func (r *movementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	defer r.lock()()
	all := r.filter("")
	sort.SliceStable(all, func(i, j int) bool {
		return all[j].MovementDate.Before(all[i].MovementDate)
	})
	return paginate(all, limit, offset), nil
}

func (r *movementRepo) DeleteByProduct(productID string) error {
	defer r.lock()()
	kept := r.store.movements[:0]
	for _, m := range r.store.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.store.movements = kept
	return nil
}

func (r *movementRepo) filter(productID string) []*entity.StockMovement {
	var list []*entity.StockMovement
	for i := range r.store.movements {
		if productID != "" && r.store.movements[i].ProductID != productID {
			continue
		}
		cp := r.store.movements[i]
		list = append(list, &cp)
	}
	return list
}

func reverse(list []*entity.StockMovement) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}

func paginate(list []*entity.StockMovement, limit, offset int) []*entity.StockMovement {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
