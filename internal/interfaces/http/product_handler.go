package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sincronizador-api/internal/application/dto"
	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
)

// ProductSyncHandler maneja las peticiones HTTP de sincronización de productos.
type ProductSyncHandler struct {
	uc *sync.ProductSyncUseCase
}

// NewProductSyncHandler construye el handler.
func NewProductSyncHandler(uc *sync.ProductSyncUseCase) *ProductSyncHandler {
	return &ProductSyncHandler{uc: uc}
}

// Fields devuelve los descriptores de campo declarados por los pipelines.
func (h *ProductSyncHandler) Fields(c *fiber.Ctx) error {
	return c.JSON(dto.NewFieldResponses(h.uc.Fields()))
}

// Get lee los campos pedidos de un producto hacia un payload plano.
// ?fields=weight,stock_reel limita la lectura; vacío = todos.
func (h *ProductSyncHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var fieldIDs []string
	if raw := c.Query("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fieldIDs = append(fieldIDs, f)
			}
		}
	}
	out, err := h.uc.Get(c.Context(), GetSession(c), id, fieldIDs)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Create crea el producto desde el payload y aplica los campos entrantes.
func (h *ProductSyncHandler) Create(c *fiber.Ctx) error {
	var in sync.Payload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Set(c.Context(), GetSession(c), "", in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUpdateResponse(res))
}

// Set aplica el payload sobre un producto existente.
func (h *ProductSyncHandler) Set(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in sync.Payload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Set(c.Context(), GetSession(c), id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewUpdateResponse(res))
}

// Delete elimina el producto.
func (h *ProductSyncHandler) Delete(c *fiber.Ctx) error {
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
