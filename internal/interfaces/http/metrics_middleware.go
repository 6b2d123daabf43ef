package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/prometheus"
)

// MetricsMiddleware registra contador y duración por petición HTTP.
// Usa la ruta registrada (c.Route().Path) para no explotar la cardinalidad
// con IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		method := c.Method()
		path := c.Route().Path
		code := strconv.Itoa(status)

		if prometheus.HTTPRequestsTotal != nil {
			prometheus.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
			prometheus.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		}

		return err
	}
}
