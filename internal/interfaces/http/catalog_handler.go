package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain"
	"github.com/jhoicas/pos-terminal/internal/infrastructure/memory"
)

// CatalogHandler maneja las peticiones HTTP de catálogo del sandbox.
type CatalogHandler struct {
	store *memory.Store
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(store *memory.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// List GET /api/stores/:storeId/catalog?search=
// Devuelve la lista ordenada de productos vendibles de la tienda.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "storeId debe ser un entero positivo"})
	}
	search := c.Query("search")

	entries, err := h.store.Catalog(int64(storeID), search)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.CatalogEntryResponse{
			StoreProductID:    e.StoreProductID,
			ProductID:         e.ProductID,
			Name:              e.Name,
			SKU:               e.SKU,
			Unit:              e.Unit,
			Price:             e.Price,
			QuantityInStock:   e.QuantityInStock,
			LowStockThreshold: e.LowStockThreshold,
		})
	}
	return c.JSON(out)
}
