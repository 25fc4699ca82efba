package entity

import "github.com/shopspring/decimal"

// CartLine una línea de la venta en curso. Los campos descriptivos y el
// precio son una copia del CatalogEntry al momento de agregar (snapshot, no
// referencia viva): el precio al agregar es el autoritativo para la venta
// aunque el catálogo cambie después.
// Invariante: 1 <= Quantity <= stock conocido del producto; una línea con
// cantidad cero no existe, se elimina.
type CartLine struct {
	StoreProductID int64
	ProductID      int64
	Name           string
	SKU            string
	Unit           string
	Price          decimal.Decimal
	Quantity       int64
}

// LineTotal Price × Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}
