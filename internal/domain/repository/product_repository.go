package repository

import "github.com/jhoicas/Stock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Solo válido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe la nueva cantidad e incrementa Version.
	UpdateStock(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByType(productType string, limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
