package memory

import (
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*productRepo)(nil)

// productRepo adaptador en memoria. Con locking=true toma el lock del store
// por operación; dentro de una transacción el lock ya lo sostiene el TxRunner.
type productRepo struct {
	store   *Store
	locking bool
}

func (r *productRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *productRepo) Create(product *entity.Product) error {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.store.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.products[product.ID] = *product
	r.store.productOrder = append(r.store.productOrder, product.ID)
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	return r.get(id), nil
}

// GetByIDForUpdate en memoria equivale a GetByID: la exclusión la da el lock
// del store sostenido por la transacción.
func (r *productRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	defer r.lock()()
	return r.get(id), nil
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.Code == code {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	defer r.lock()()
	current, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Description = product.Description
	current.Type = product.Type
	current.SupplierValue = product.SupplierValue
	current.UpdatedAt = product.UpdatedAt
	r.store.products[product.ID] = current
	return nil
}

func (r *productRepo) UpdateStock(productID string, quantity int64) error {
	defer r.lock()()
	current, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	current.StockQuantity = quantity
	current.Version++
	r.store.products[productID] = current
	return nil
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	return r.page(r.store.productOrder, limit, offset, ""), nil
}

func (r *productRepo) ListByType(productType string, limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	return r.page(r.store.productOrder, limit, offset, productType), nil
}

func (r *productRepo) ListAll() ([]*entity.Product, error) {
	defer r.lock()()
	list := make([]*entity.Product, 0, len(r.store.productOrder))
	for _, id := range r.store.productOrder {
		p := r.store.products[id]
		cp := p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *productRepo) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.store.products[id]; !ok {
		return nil
	}
	delete(r.store.products, id)
	for i, pid := range r.store.productOrder {
		if pid == id {
			r.store.productOrder = append(r.store.productOrder[:i], r.store.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *productRepo) get(id string) *entity.Product {
	p, ok := r.store.products[id]
	if !ok {
		return nil
	}
	cp := p
	return &cp
}

func (r *productRepo) page(order []string, limit, offset int, productType string) []*entity.Product {
	var list []*entity.Product
	skipped := 0
	for _, id := range order {
		p := r.store.products[id]
		if productType != "" && p.Type != productType {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(list) == limit {
			break
		}
		cp := p
		list = append(list, &cp)
	}
	return list
}
