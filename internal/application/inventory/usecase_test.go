package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// seedProduct crea un producto con la cantidad inicial dada y devuelve su ID.
func seedProduct(t *testing.T, store *memory.Store, qty int64) string {
	t.Helper()
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          "COD-" + uuid.New().String()[:8],
		Description:   "Producto de prueba",
		Type:          "ELECTRONIC",
		SupplierValue: decimal.NewFromInt(100),
		StockQuantity: qty,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, store.ProductRepository().Create(product))
	return product.ID
}

func newRegisterUC(store *memory.Store) *appinventory.RegisterMovementUseCase {
	return appinventory.NewRegisterMovementUseCase(store.TxRunner(), store.MovementRepository(), store.ProductRepository())
}

func TestRegisterMovement_Entrada(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)

	result, err := uc.RegisterMovement(context.Background(), appinventory.MovementInput{
		ProductID:     productID,
		Type:          entity.MovementTypeIN,
		Quantity:      10,
		PurchaseValue: dec(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.NewQuantity)
	assert.NotEmpty(t, result.MovementID)

	// El movimiento quedó persistido junto con el nuevo stock
	mov, err := store.MovementRepository().GetByID(result.MovementID)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeIN, mov.Type)

	product, err := store.ProductRepository().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.StockQuantity)
}

func TestRegisterMovement_Salida(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 10)
	uc := newRegisterUC(store)

	result, err := uc.RegisterMovement(context.Background(), appinventory.MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeOUT,
		Quantity:  4,
		SaleValue: dec(150),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.NewQuantity)
}

// TestRegisterMovement_StockInsuficiente: una salida mayor al stock actual se
// rechaza sin mutar nada (ni el contador ni el libro de movimientos).
func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 3)
	uc := newRegisterUC(store)

	_, err := uc.RegisterMovement(context.Background(), appinventory.MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeOUT,
		Quantity:  5,
		SaleValue: dec(150),
	})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	// Verificación por lectura posterior: nada cambió
	product, err := store.ProductRepository().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), product.StockQuantity)

	movements, err := store.MovementRepository().ListByProduct(productID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := newRegisterUC(store)

	_, err := uc.RegisterMovement(context.Background(), appinventory.MovementInput{
		ProductID:     uuid.New().String(),
		Type:          entity.MovementTypeIN,
		Quantity:      1,
		PurchaseValue: dec(100),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// TestRegisterMovement_Validacion: entradas inválidas se rechazan antes de
// tocar el store.
func TestRegisterMovement_Validacion(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 10)
	uc := newRegisterUC(store)
	ctx := context.Background()

	cases := []struct {
		name  string
		input appinventory.MovementInput
	}{
		{"sin producto", appinventory.MovementInput{Type: entity.MovementTypeIN, Quantity: 1}},
		{"cantidad cero", appinventory.MovementInput{ProductID: productID, Type: entity.MovementTypeIN, Quantity: 0}},
		{"cantidad negativa", appinventory.MovementInput{ProductID: productID, Type: entity.MovementTypeIN, Quantity: -5}},
		{"tipo desconocido", appinventory.MovementInput{ProductID: productID, Type: "ADJUST", Quantity: 1}},
		{"salida sin valor de venta", appinventory.MovementInput{ProductID: productID, Type: entity.MovementTypeOUT, Quantity: 1}},
		{"valor de compra no positivo", appinventory.MovementInput{ProductID: productID, Type: entity.MovementTypeIN, Quantity: 1, PurchaseValue: dec(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(ctx, tc.input)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}

	product, err := store.ProductRepository().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.StockQuantity)
}

// TestRegisterMovement_Concurrencia: N entradas concurrentes de 1 unidad sobre
// un producto fresco terminan con stock exactamente N (sin updates perdidos).
func TestRegisterMovement_Concurrencia(t *testing.T) {
	const n = 50

	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterMovement(context.Background(), appinventory.MovementInput{
				ProductID:     productID,
				Type:          entity.MovementTypeIN,
				Quantity:      1,
				PurchaseValue: dec(100),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	product, err := store.ProductRepository().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), product.StockQuantity)

	movements, err := store.MovementRepository().ListByProduct(productID)
	require.NoError(t, err)
	assert.Len(t, movements, n)
}

// TestRegisterMovement_Invariante: tras una secuencia mixta el stock es
// sum(IN) - sum(OUT) y nunca fue negativo.
func TestRegisterMovement_Invariante(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)
	ctx := context.Background()

	steps := []appinventory.MovementInput{
		{ProductID: productID, Type: entity.MovementTypeIN, Quantity: 10, PurchaseValue: dec(3000)},
		{ProductID: productID, Type: entity.MovementTypeOUT, Quantity: 8, SaleValue: dec(5800)},
		{ProductID: productID, Type: entity.MovementTypeIN, Quantity: 5, PurchaseValue: dec(3500)},
		{ProductID: productID, Type: entity.MovementTypeOUT, Quantity: 4, SaleValue: dec(6000)},
	}
	for _, in := range steps {
		_, err := uc.RegisterMovement(ctx, in)
		require.NoError(t, err)
	}

	movements, err := store.MovementRepository().ListByProduct(productID)
	require.NoError(t, err)
	var expected int64
	for _, m := range movements {
		if m.IsEntry() {
			expected += m.Quantity
		} else {
			expected -= m.Quantity
		}
	}

	product, err := store.ProductRepository().GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, expected, product.StockQuantity)
	assert.GreaterOrEqual(t, product.StockQuantity, int64(0))
}

func TestUpdateMovement_ReemplazaCampos(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)
	ctx := context.Background()

	result, err := uc.RegisterMovement(ctx, appinventory.MovementInput{
		ProductID:     productID,
		Type:          entity.MovementTypeIN,
		Quantity:      5,
		PurchaseValue: dec(100),
		Description:   "compra inicial",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateMovement(ctx, result.MovementID, appinventory.MovementInput{
		ProductID:     productID,
		Type:          entity.MovementTypeIN,
		Quantity:      7,
		PurchaseValue: dec(120),
		Description:   "compra corregida",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.Quantity)
	assert.Equal(t, "compra corregida", updated.Description)
	assert.True(t, updated.PurchaseValue.Equal(decimal.NewFromInt(120)))
}

// TestUpdateMovement_ProductoFantasma: reasignar un movimiento a un producto
// inexistente se rechaza; el movimiento conserva su producto original.
func TestUpdateMovement_ProductoFantasma(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)
	ctx := context.Background()

	result, err := uc.RegisterMovement(ctx, appinventory.MovementInput{
		ProductID:     productID,
		Type:          entity.MovementTypeIN,
		Quantity:      5,
		PurchaseValue: dec(100),
	})
	require.NoError(t, err)

	_, err = uc.UpdateMovement(ctx, result.MovementID, appinventory.MovementInput{
		ProductID:     uuid.New().String(),
		Type:          entity.MovementTypeIN,
		Quantity:      5,
		PurchaseValue: dec(100),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	mov, err := store.MovementRepository().GetByID(result.MovementID)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, productID, mov.ProductID)
}

// El token optimista del producto se incrementa en cada escritura de stock.
func TestRegisterMovement_VersionPorEscritura(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.RegisterMovement(ctx, appinventory.MovementInput{
			ProductID:     productID,
			Type:          entity.MovementTypeIN,
			Quantity:      1,
			PurchaseValue: dec(100),
		})
		require.NoError(t, err)

		product, err := store.ProductRepository().GetByID(productID)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), product.Version)
	}
}

func TestUpdateMovement_NoEncontrado(t *testing.T) {
	store := memory.NewStore()
	productID := seedProduct(t, store, 0)
	uc := newRegisterUC(store)

	_, err := uc.UpdateMovement(context.Background(), uuid.New().String(), appinventory.MovementInput{
		ProductID:     productID,
		Type:          entity.MovementTypeIN,
		Quantity:      1,
		PurchaseValue: dec(100),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
