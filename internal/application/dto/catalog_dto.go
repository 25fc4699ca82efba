package dto

import "github.com/shopspring/decimal"

// CatalogEntryResponse un producto vendible de una tienda, tal como lo
// devuelve GET /api/stores/{storeId}/catalog.
type CatalogEntryResponse struct {
	StoreProductID    int64           `json:"store_product_id"`
	ProductID         int64           `json:"product_id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku,omitempty"`
	Unit              string          `json:"unit"`
	Price             decimal.Decimal `json:"price"`
	QuantityInStock   int64           `json:"quantity_in_stock"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
}
