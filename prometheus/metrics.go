// Package prometheus define las métricas de la aplicación.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Movimientos de stock
	MovementsTotal          *prometheus.CounterVec
	InsufficientStockTotal  prometheus.Counter
	ProfitCalculationsTotal *prometheus.CounterVec

	// Base de datos
	DBOperationDuration *prometheus.HistogramVec
)

// InitMetrics registra las métricas con el prefijo configurado.
// Llamar una sola vez desde main.
func InitMetrics(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stock_movements_total",
			Help: "Total de movimientos de stock registrados",
		},
		[]string{"type"},
	)

	InsufficientStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_insufficient_stock_total",
			Help: "Total de salidas rechazadas por stock insuficiente",
		},
	)

	ProfitCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_profit_calculations_total",
			Help: "Total de cálculos de ganancia FIFO",
		},
		[]string{"result"},
	)

	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duración de operaciones de base de datos en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
}

// TrackDBOperation devuelve una función que registra la duración de una
// operación de BD: defer TrackDBOperation("register_movement")(time.Now()).
func TrackDBOperation(operation string) func(start time.Time) {
	return func(start time.Time) {
		if DBOperationDuration != nil {
			DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		}
	}
}

// RecordMovement incrementa el contador de movimientos por tipo.
func RecordMovement(movementType string) {
	if MovementsTotal != nil {
		MovementsTotal.WithLabelValues(movementType).Inc()
	}
}

// RecordInsufficientStock incrementa el contador de rechazos por stock insuficiente.
func RecordInsufficientStock() {
	if InsufficientStockTotal != nil {
		InsufficientStockTotal.Inc()
	}
}

// RecordProfitCalculation incrementa el contador de cálculos de ganancia.
// result: "ok" o "insufficient_entries".
func RecordProfitCalculation(result string) {
	if ProfitCalculationsTotal != nil {
		ProfitCalculationsTotal.WithLabelValues(result).Inc()
	}
}
