package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	appinventory "github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock nunca se edita por aquí: solo se
// mueve vía movimientos (RegisterMovementUseCase).
type ProductUseCase struct {
	txRunner    appinventory.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner appinventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create registra un producto nuevo. SupplierValue debe ser > 0; la cantidad
// inicial no puede ser negativa (normalmente 0). Code duplicado retorna
// ErrDuplicate.
func (uc *ProductUseCase) Create(_ context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Code == "" || in.Description == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.SupplierValue.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Description:   in.Description,
		Type:          in.Type,
		SupplierValue: in.SupplierValue,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos con paginación y filtro opcional por tipo.
func (uc *ProductUseCase) List(_ context.Context, productType string, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if productType != "" {
		return uc.productRepo.ListByType(productType, limit, offset)
	}
	return uc.productRepo.List(limit, offset)
}

// Update actualiza descripción, tipo y costo de proveedor. Code es inmutable y
// el stock solo se mueve vía movimientos.
func (uc *ProductUseCase) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Description == "" || in.Type == "" || !in.SupplierValue.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Description = in.Description
	product.Type = in.Type
	product.SupplierValue = in.SupplierValue
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto y su historial de movimientos en una sola
// transacción. Un producto con stock > 0 no se puede eliminar (ErrConflict).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StockQuantity > 0 {
			return domain.ErrConflict
		}
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}
