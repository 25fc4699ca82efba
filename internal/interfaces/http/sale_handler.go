package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
	"github.com/jhoicas/pos-terminal/internal/infrastructure/memory"
)

// SaleHandler maneja las peticiones HTTP de ventas del sandbox.
type SaleHandler struct {
	store *memory.Store
}

// NewSaleHandler construye el handler.
func NewSaleHandler(store *memory.Store) *SaleHandler {
	return &SaleHandler{store: store}
}

// Create POST /api/sales
// Registra una venta; responde 201 con sale_id y total.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID <= 0 || in.CashierID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y cashier_id son requeridos"})
	}
	if in.PaymentStatus != entity.PaymentStatusPaid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_status debe ser \"paid\""})
	}
	if len(in.SaleItems) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_items no puede estar vacío"})
	}

	sale, err := h.store.CreateSale(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda, cajero o producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para uno de los ítems"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{SaleID: sale.ID, Total: sale.Total})
}

// GetByID GET /api/sales/:id
// Devuelve el detalle completo de una venta registrada.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser un entero positivo"})
	}

	sale, err := h.store.GetSale(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.SaleItemResponse, 0, len(sale.SaleItems))
	for _, it := range sale.SaleItems {
		items = append(items, dto.SaleItemResponse{
			StoreProductID: it.StoreProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			PriceAtSale:    it.PriceAtSale,
		})
	}
	return c.JSON(dto.SaleDetailResponse{
		ID:            sale.ID,
		StoreID:       sale.StoreID,
		CashierID:     sale.CashierID,
		PaymentStatus: sale.PaymentStatus,
		Total:         sale.Total,
		SaleItems:     items,
		Cashier:       dto.NameRef{ID: sale.CashierID, Name: sale.CashierName},
		Store:         dto.NameRef{ID: sale.StoreID, Name: sale.StoreName},
		CreatedAt:     sale.CreatedAt,
	})
}
