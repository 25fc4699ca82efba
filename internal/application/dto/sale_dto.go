package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un ítem dentro de CreateSaleRequest.
// PriceAtSale es el precio snapshot del carrito, no el vigente en catálogo.
type SaleItemRequest struct {
	StoreProductID int64           `json:"store_product_id"`
	Quantity       int64           `json:"quantity"`
	PriceAtSale    decimal.Decimal `json:"price_at_sale"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	StoreID       int64             `json:"store_id"`
	CashierID     int64             `json:"cashier_id"`
	PaymentStatus string            `json:"payment_status"`
	SaleItems     []SaleItemRequest `json:"sale_items"`
}

// CreateSaleResponse respuesta de POST /api/sales.
type CreateSaleResponse struct {
	SaleID int64           `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}

// SaleItemResponse ítem dentro del detalle de venta.
type SaleItemResponse struct {
	StoreProductID int64           `json:"store_product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int64           `json:"quantity"`
	PriceAtSale    decimal.Decimal `json:"price_at_sale"`
}

// NameRef referencia con nombre (cajero o tienda) anidada en el detalle.
type NameRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SaleDetailResponse respuesta de GET /api/sales/{id}: la venta completa con
// ítems, cajero y tienda.
type SaleDetailResponse struct {
	ID            int64              `json:"id"`
	StoreID       int64              `json:"store_id"`
	CashierID     int64              `json:"cashier_id"`
	PaymentStatus string             `json:"payment_status"`
	Total         decimal.Decimal    `json:"total"`
	SaleItems     []SaleItemResponse `json:"sale_items"`
	Cashier       NameRef            `json:"cashier"`
	Store         NameRef            `json:"store"`
	CreatedAt     time.Time          `json:"created_at"`
}
