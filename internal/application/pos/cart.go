package pos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// SignalKind clase de señal producida por una operación del carrito. Las
// restricciones de stock son resultados esperados del flujo, no errores:
// se reportan junto al estado resultante (posiblemente sin cambios) y nunca
// se lanzan.
type SignalKind int

const (
	SignalNone SignalKind = iota
	// SignalInsufficientStock el agregado fue rechazado: no hay stock para
	// una unidad más. El carrito no cambió.
	SignalInsufficientStock
	// SignalStockLimit la cantidad pedida superaba el stock y fue recortada
	// al máximo disponible (recorte, no rechazo).
	SignalStockLimit
)

// StockSignal señal de stock de AddToCart/UpdateQuantity, con los datos para
// un mensaje específico al usuario (producto y límite).
type StockSignal struct {
	Kind        SignalKind
	ProductName string
	Limit       int64
}

// Message texto para el usuario; vacío si no hubo señal.
func (s StockSignal) Message() string {
	switch s.Kind {
	case SignalInsufficientStock:
		return fmt.Sprintf("stock insuficiente para %q: máximo %d unidades", s.ProductName, s.Limit)
	case SignalStockLimit:
		return fmt.Sprintf("límite de stock alcanzado para %q: cantidad ajustada a %d", s.ProductName, s.Limit)
	default:
		return ""
	}
}

// Cart carrito de la venta en curso: colección ordenada de líneas con
// StoreProductID como identidad. Propiedad exclusiva de una sesión de
// terminal (un solo escritor, sin lock); todas las mutaciones pasan por sus
// métodos. Ninguna transición produce una línea con cantidad <= 0 ni por
// encima del stock conocido: los invariantes se garantizan por construcción.
type Cart struct {
	lines []entity.CartLine // orden de inserción
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// AddToCart agrega una unidad del producto al carrito. Si no existe línea
// para el producto se crea con cantidad 1 (solo si hay stock); si existe se
// incrementa en 1 salvo que supere el stock, en cuyo caso la operación se
// rechaza sin tocar el carrito. Repetir la llamada con el stock saturado
// produce siempre el mismo rechazo (idempotente bajo saturación).
func (c *Cart) AddToCart(e entity.CatalogEntry) StockSignal {
	idx := c.indexOf(e.StoreProductID)
	if idx < 0 {
		if e.QuantityInStock < 1 {
			return StockSignal{Kind: SignalInsufficientStock, ProductName: e.Name, Limit: e.QuantityInStock}
		}
		c.lines = append(c.lines, entity.CartLine{
			StoreProductID: e.StoreProductID,
			ProductID:      e.ProductID,
			Name:           e.Name,
			SKU:            e.SKU,
			Unit:           e.Unit,
			Price:          e.Price,
			Quantity:       1,
		})
		return StockSignal{}
	}

	proposed := c.lines[idx].Quantity + 1
	if proposed > e.QuantityInStock {
		return StockSignal{Kind: SignalInsufficientStock, ProductName: e.Name, Limit: e.QuantityInStock}
	}
	c.lines[idx].Quantity = proposed
	return StockSignal{}
}

// UpdateQuantity fija la cantidad de una línea, validando contra el snapshot
// de catálogo vigente. Si la cantidad supera el stock se recorta al stock
// (SignalStockLimit); si la cantidad resultante es <= 0 la línea se elimina.
// Si el producto ya no está en el snapshot (línea obsoleta, p. ej. producto
// retirado de la tienda) la actualización se aplica sin recorte: la línea
// sigue siendo editable y eliminable para que el cajero pueda corregir la
// venta.
func (c *Cart) UpdateQuantity(storeProductID, quantity int64, snapshot []entity.CatalogEntry) StockSignal {
	idx := c.indexOf(storeProductID)
	if idx < 0 {
		return StockSignal{}
	}

	var sig StockSignal
	if entry := entity.FindEntry(snapshot, storeProductID); entry != nil && quantity > entry.QuantityInStock {
		quantity = entry.QuantityInStock
		sig = StockSignal{Kind: SignalStockLimit, ProductName: entry.Name, Limit: entry.QuantityInStock}
	}

	if quantity <= 0 {
		c.removeAt(idx)
		return sig
	}
	c.lines[idx].Quantity = quantity
	return sig
}

// RemoveFromCart elimina la línea del producto si existe; no-op si no está.
func (c *Cart) RemoveFromCart(storeProductID int64) {
	if idx := c.indexOf(storeProductID); idx >= 0 {
		c.removeAt(idx)
	}
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []entity.CartLine {
	out := make([]entity.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity cantidad actual de un producto; 0 si no está en el carrito.
func (c *Cart) Quantity(storeProductID int64) int64 {
	if idx := c.indexOf(storeProductID); idx >= 0 {
		return c.lines[idx].Quantity
	}
	return 0
}

// Subtotal suma de Price × Quantity sobre todas las líneas. Se recalcula en
// cada lectura, nunca se guarda de forma redundante.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len número de líneas (no de unidades).
func (c *Cart) Len() int {
	return len(c.lines)
}

// Reset vacía el carrito. Se invoca tras una venta exitosa.
func (c *Cart) Reset() {
	c.lines = nil
}

func (c *Cart) indexOf(storeProductID int64) int {
	for i := range c.lines {
		if c.lines[i].StoreProductID == storeProductID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}
