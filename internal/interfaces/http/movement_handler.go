package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	appinventory "github.com/jhoicas/Stock-api/internal/application/inventory"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/prometheus"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock y ganancia.
type MovementHandler struct {
	register *appinventory.RegisterMovementUseCase
	query    *appinventory.MovementQueryUseCase
	profit   *appinventory.ProfitUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	register *appinventory.RegisterMovementUseCase,
	query *appinventory.MovementQueryUseCase,
	profit *appinventory.ProfitUseCase,
) *MovementHandler {
	return &MovementHandler{register: register, query: query, profit: profit}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type (IN|OUT), quantity, sale_value (OUT), purchase_value (IN, opcional)"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.register.RegisterMovement(c.Context(), appinventory.MovementInput{
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		SaleValue:     in.SaleValue,
		PurchaseValue: in.PurchaseValue,
		Description:   in.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			prometheus.RecordInsufficientStock()
		}
		return respondError(c, err)
	}
	prometheus.RecordMovement(in.Type)
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		MovementID:  result.MovementID,
		NewQuantity: result.NewQuantity,
		Message:     "movimiento registrado",
	})
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path      string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.query.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementToResponse(mov))
}

// Update godoc
// @Summary      Reemplazar los campos de un movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del movimiento"
// @Param        body  body  dto.RegisterMovementRequest  true  "campos completos del movimiento"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.UpdateMovement(c.Context(), c.Params("id"), appinventory.MovementInput{
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		SaleValue:     in.SaleValue,
		PurchaseValue: in.PurchaseValue,
		Description:   in.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementToResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.query.List(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": toMovementResponses(movements)})
}

// ListByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        limit      query  int     false  "Tamaño de página (default 50)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/product/{productId} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	movements, err := h.query.ListByProduct(c.Context(), c.Params("productId"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": toMovementResponses(movements)})
}

// GroupedByProduct godoc
// @Summary      Movimientos agrupados por producto
// @Tags         movements
// @Produce      json
// @Success      200  {object}  map[string][]dto.MovementResponse
// @Router       /api/movements/grouped [get]
func (h *MovementHandler) GroupedByProduct(c *fiber.Ctx) error {
	grouped, err := h.query.GroupedByProduct(c.Context(), c.QueryInt("limit", 200), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make(map[string][]dto.MovementResponse, len(grouped))
	for productID, movements := range grouped {
		out[productID] = toMovementResponses(movements)
	}
	return c.JSON(out)
}

// Profit godoc
// @Summary      Ganancia FIFO de un producto
// @Description  Reproduce el historial del producto cruzando salidas contra
//               las capas de costo de entrada más antiguas.
// @Tags         movements
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProfitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/profit/{productId} [get]
func (h *MovementHandler) Profit(c *fiber.Ctx) error {
	productID := c.Params("productId")
	result, err := h.profit.CalculateProfit(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientEntryStock) {
			prometheus.RecordProfitCalculation("insufficient_entries")
		}
		return respondError(c, err)
	}
	prometheus.RecordProfitCalculation("ok")
	return c.JSON(dto.ProfitResponse{
		ProductID:    productID,
		Revenue:      result.Revenue,
		Cost:         result.Cost,
		Profit:       result.Profit,
		QuantitySold: result.QuantitySold,
	})
}

func toMovementResponses(movements []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementToResponse(m))
	}
	return out
}
