package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (IN, OUT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity siempre positiva; SaleValue obligatorio en OUT; PurchaseValue
// opcional en IN (si falta, el motor FIFO usa el SupplierValue del producto).
type MovementInput struct {
	ProductID     string
	Type          string
	Quantity      int64
	SaleValue     *decimal.Decimal
	PurchaseValue *decimal.Decimal
	Description   string
}

// MovementResult identifica el movimiento creado y la cantidad resultante.
type MovementResult struct {
	MovementID  string
	NewQuantity int64
}

// validate rechaza la entrada antes de tocar la BD.
func (in MovementInput) validate() error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeIN:
		if in.PurchaseValue != nil && !in.PurchaseValue.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeOUT:
		if in.SaleValue == nil || !in.SaleValue.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// RegisterMovement inicia una transacción, bloquea la fila del producto
// (SELECT FOR UPDATE), aplica el delta de cantidad según el tipo y persiste el
// movimiento en la misma transacción. Dos llamadas concurrentes sobre el mismo
// producto se serializan en el lock de fila; ninguna observa una escritura
// parcial.
//
// Una salida que dejaría el stock negativo retorna ErrInsufficientStock sin
// mutar nada; un producto inexistente retorna ErrNotFound.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &MovementResult{MovementID: uuid.New().String()}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar condiciones de carrera
		product, err := productRepo.GetByIDForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.StockQuantity
		if input.Type == entity.MovementTypeIN {
			newQty += input.Quantity
		} else {
			if product.StockQuantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty -= input.Quantity
		}
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:            result.MovementID,
			ProductID:     product.ID,
			Type:          input.Type,
			Quantity:      input.Quantity,
			SaleValue:     input.SaleValue,
			PurchaseValue: input.PurchaseValue,
			MovementDate:  now,
			Description:   input.Description,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result.NewQuantity = newQty
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateMovement reemplaza los campos de un movimiento existente (sustitución
// completa, re-validada). El producto referenciado debe existir: reasignar un
// movimiento a un producto fantasma lo sacaría del historial real y rompería
// el cruce FIFO. No recalcula el efecto histórico sobre el stock: el contador
// del producto solo se mueve al registrar movimientos.
func (uc *RegisterMovementUseCase) UpdateMovement(ctx context.Context, movementID string, input MovementInput) (*entity.StockMovement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	mov.ProductID = input.ProductID
	mov.Type = input.Type
	mov.Quantity = input.Quantity
	mov.SaleValue = input.SaleValue
	mov.PurchaseValue = input.PurchaseValue
	mov.Description = input.Description

	if err := uc.movRepo.Update(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
