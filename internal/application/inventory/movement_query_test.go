package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

func TestMovementQuery_NoEncontrado(t *testing.T) {
	store := memory.NewStore()
	uc := appinventory.NewMovementQueryUseCase(store.MovementRepository())

	_, err := uc.GetByID(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMovementQuery_AgrupadoPorProducto(t *testing.T) {
	store := memory.NewStore()
	first := seedProduct(t, store, 0)
	second := seedProduct(t, store, 0)
	register := newRegisterUC(store)
	uc := appinventory.NewMovementQueryUseCase(store.MovementRepository())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := register.RegisterMovement(ctx, appinventory.MovementInput{
			ProductID: first, Type: entity.MovementTypeIN, Quantity: 1, PurchaseValue: dec(100),
		})
		require.NoError(t, err)
	}
	_, err := register.RegisterMovement(ctx, appinventory.MovementInput{
		ProductID: second, Type: entity.MovementTypeIN, Quantity: 2, PurchaseValue: dec(50),
	})
	require.NoError(t, err)

	grouped, err := uc.GroupedByProduct(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[first], 3)
	assert.Len(t, grouped[second], 1)
}

func TestMovementQuery_PaginadoPorProducto(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	register := newRegisterUC(store)
	uc := appinventory.NewMovementQueryUseCase(store.MovementRepository())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := register.RegisterMovement(ctx, appinventory.MovementInput{
			ProductID: productID, Type: entity.MovementTypeIN, Quantity: 1, PurchaseValue: dec(100),
		})
		require.NoError(t, err)
	}

	page, err := uc.ListByProduct(ctx, productID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := uc.ListByProduct(ctx, productID, 10, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
