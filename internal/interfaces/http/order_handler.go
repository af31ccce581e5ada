package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sincronizador-api/internal/application/dto"
	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
)

// OrderSyncHandler maneja las peticiones HTTP de sincronización de pedidos.
type OrderSyncHandler struct {
	uc *sync.OrderSyncUseCase
}

// NewOrderSyncHandler construye el handler.
func NewOrderSyncHandler(uc *sync.OrderSyncUseCase) *OrderSyncHandler {
	return &OrderSyncHandler{uc: uc}
}

// Get carga el pedido con sus líneas.
func (h *OrderSyncHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	order, err := h.uc.Get(c.Context(), GetSession(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// Create crea el pedido desde el payload externo. La fecha es obligatoria.
func (h *OrderSyncHandler) Create(c *fiber.Ctx) error {
	var in sync.Payload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), GetSession(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// Update aplica los campos extendidos entrantes sobre el pedido.
func (h *OrderSyncHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var extra map[string]any
	if err := c.BodyParser(&extra); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Update(c.Context(), GetSession(c), id, extra)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewUpdateResponse(res))
}

// Delete elimina el pedido.
func (h *OrderSyncHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ok, err := h.uc.Delete(c.Context(), GetSession(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"deleted": ok})
}
