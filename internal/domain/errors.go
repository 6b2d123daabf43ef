package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrInsufficientEntryStock = errors.New("entradas insuficientes para calcular ganancia")
)

// InsufficientEntryStockError indica que al calcular la ganancia FIFO una salida
// consumió más unidades de las que existen en las capas de costo de entrada.
// Requested es la cantidad de la salida; Matched las unidades que sí se cruzaron.
type InsufficientEntryStockError struct {
	ProductID string
	Requested int64
	Matched   int64
}

func (e *InsufficientEntryStockError) Error() string {
	return fmt.Sprintf("entradas insuficientes para el producto %s: salida de %d, solo %d cruzadas",
		e.ProductID, e.Requested, e.Matched)
}

// Unmatched devuelve las unidades que no pudieron cruzarse contra ninguna entrada.
func (e *InsufficientEntryStockError) Unmatched() int64 {
	return e.Requested - e.Matched
}

// Is permite errors.Is(err, domain.ErrInsufficientEntryStock).
func (e *InsufficientEntryStockError) Is(target error) bool {
	return target == ErrInsufficientEntryStock
}
