package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusPaid único estado de pago soportado por el terminal: la venta
// POS se registra ya cobrada.
const PaymentStatusPaid = "paid"

// SaleItem ítem de una venta ya registrada en el backend.
type SaleItem struct {
	StoreProductID int64
	ProductName    string
	Quantity       int64
	PriceAtSale    decimal.Decimal
}

// Sale venta registrada, con el detalle completo que devuelve el backend.
type Sale struct {
	ID            int64
	StoreID       int64
	CashierID     int64
	PaymentStatus string
	Total         decimal.Decimal
	SaleItems     []SaleItem
	CashierName   string
	StoreName     string
	CreatedAt     time.Time
}

// CompletedSaleSummary resumen que se muestra al usuario tras registrar una
// venta. Si el fetch de detalle falla, se sintetiza un resumen mínimo con los
// datos ya conocidos (Partial=true): la venta sigue siendo exitosa, solo el
// recibo queda incompleto.
type CompletedSaleSummary struct {
	ID          int64
	Total       decimal.Decimal
	SaleItems   []SaleItem
	CashierName string
	StoreName   string
	Partial     bool
}

// SummaryFromSale construye el resumen completo a partir del detalle.
func SummaryFromSale(s *Sale) *CompletedSaleSummary {
	return &CompletedSaleSummary{
		ID:          s.ID,
		Total:       s.Total,
		SaleItems:   s.SaleItems,
		CashierName: s.CashierName,
		StoreName:   s.StoreName,
	}
}

// PartialSummary construye el resumen mínimo de respaldo cuando el detalle
// no pudo recuperarse.
func PartialSummary(saleID int64, total decimal.Decimal) *CompletedSaleSummary {
	return &CompletedSaleSummary{
		ID:          saleID,
		Total:       total,
		SaleItems:   []SaleItem{},
		CashierName: "Unknown",
		StoreName:   "Unknown",
		Partial:     true,
	}
}
