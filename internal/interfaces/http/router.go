package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductSync *sync.ProductSyncUseCase
	OrderSync   *sync.OrderSyncUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/sync", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductSyncHandler(deps.ProductSync)
	products.Get("/fields", productHandler.Fields)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Set)
	products.Delete("/:id", productHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderSyncHandler(deps.OrderSync)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.Get)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
}
