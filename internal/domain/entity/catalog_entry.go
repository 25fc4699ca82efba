package entity

import "github.com/shopspring/decimal"

// CatalogEntry representa un producto vendible en una tienda concreta, tal
// como lo devuelve el backend en el último fetch de catálogo. Es inmutable:
// cada fetch reemplaza el snapshot completo, nunca se muta un entry existente.
// QuantityInStock es el stock autoritativo al momento del fetch y es la cota
// superior para las cantidades del carrito.
type CatalogEntry struct {
	StoreProductID    int64 // identidad producto-tienda; clave de las líneas del carrito
	ProductID         int64
	Name              string
	SKU               string // puede venir vacío
	Unit              string
	Price             decimal.Decimal // precio de venta vigente, >= 0
	QuantityInStock   int64
	LowStockThreshold int64
}

// IsLowStock indica si el stock está en o por debajo del umbral configurado.
func (e CatalogEntry) IsLowStock() bool {
	return e.QuantityInStock <= e.LowStockThreshold
}

// FindEntry busca un entry por StoreProductID dentro de un snapshot.
// Devuelve nil si el producto no está en el snapshot actual.
func FindEntry(snapshot []CatalogEntry, storeProductID int64) *CatalogEntry {
	for i := range snapshot {
		if snapshot[i].StoreProductID == storeProductID {
			return &snapshot[i]
		}
	}
	return nil
}
