package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-terminal/internal/infrastructure/memory"
	"github.com/jhoicas/pos-terminal/pkg/logger"
)

// RouterDeps dependencias para el router del sandbox.
type RouterDeps struct {
	Store *memory.Store
	Log   *logger.Logger
}

// Router registra las rutas del backend sandbox: las tres operaciones que el
// terminal consume.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID(deps.Log.Component("sandbox-http")))

	api := app.Group("/api")

	catalogHandler := NewCatalogHandler(deps.Store)
	api.Get("/stores/:storeId/catalog", catalogHandler.List)

	saleHandler := NewSaleHandler(deps.Store)
	sales := api.Group("/sales")
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
}
