package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func entryWith(id int64, name string, stock int64, price string) entity.CatalogEntry {
	p, _ := decimal.NewFromString(price)
	return entity.CatalogEntry{
		StoreProductID:  id,
		ProductID:       id + 100,
		Name:            name,
		SKU:             "SKU-" + name,
		Unit:            "und",
		Price:           p,
		QuantityInStock: stock,
	}
}

// assertInvariants verifica los invariantes estructurales del carrito contra
// el snapshot: toda línea cumple 1 <= cantidad <= stock conocido.
func assertInvariants(t *testing.T, cart *pos.Cart, snapshot []entity.CatalogEntry) {
	t.Helper()
	for _, l := range cart.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, int64(1), "ninguna línea puede tener cantidad < 1")
		if e := entity.FindEntry(snapshot, l.StoreProductID); e != nil {
			assert.LessOrEqual(t, l.Quantity, e.QuantityInStock, "ninguna línea puede superar el stock")
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddToCart
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: producto con stock 3 y precio 10.00. Tres agregados
// consolidan una sola línea con cantidad 3 y subtotal 30.00; el cuarto se
// rechaza sin tocar el carrito.
func TestAddToCart_ConsolidaLineaHastaElStock(t *testing.T) {
	p := entryWith(7, "Leche", 3, "10.00")
	cart := pos.NewCart()

	for i := 0; i < 3; i++ {
		sig := cart.AddToCart(p)
		assert.Equal(t, pos.SignalNone, sig.Kind)
	}

	require.Equal(t, 1, cart.Len(), "agregados del mismo producto no crean líneas nuevas")
	assert.Equal(t, int64(3), cart.Quantity(7))
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("30.00")), "subtotal = 3 × 10.00")

	// Cuarto agregado: stock saturado, rechazo sin cambios.
	sig := cart.AddToCart(p)
	assert.Equal(t, pos.SignalInsufficientStock, sig.Kind)
	assert.Equal(t, "Leche", sig.ProductName)
	assert.Equal(t, int64(3), sig.Limit)
	assert.Equal(t, int64(3), cart.Quantity(7), "el rechazo no modifica el carrito")
	assert.Equal(t, 1, cart.Len())
}

// Repetir el agregado con el stock saturado produce siempre el mismo rechazo
// (idempotente bajo saturación, sin corromper estado).
func TestAddToCart_IdempotenteBajoSaturacion(t *testing.T) {
	p := entryWith(7, "Leche", 1, "10.00")
	cart := pos.NewCart()
	cart.AddToCart(p)

	for i := 0; i < 5; i++ {
		sig := cart.AddToCart(p)
		assert.Equal(t, pos.SignalInsufficientStock, sig.Kind)
		assert.Equal(t, int64(1), cart.Quantity(7))
	}
}

// Stock cero: el agregado se rechaza incondicionalmente, no se crea línea.
func TestAddToCart_RechazaSinStock(t *testing.T) {
	p := entryWith(4, "Café", 0, "21900")
	cart := pos.NewCart()

	sig := cart.AddToCart(p)
	assert.Equal(t, pos.SignalInsufficientStock, sig.Kind)
	assert.True(t, cart.IsEmpty())
}

// El precio de la línea es snapshot al agregar: cambiar el precio del catálogo
// después no afecta al carrito.
func TestAddToCart_PrecioEsSnapshot(t *testing.T) {
	p := entryWith(7, "Leche", 5, "10.00")
	cart := pos.NewCart()
	cart.AddToCart(p)

	p.Price = decimal.RequireFromString("99.00") // el catálogo cambió
	cart.AddToCart(p)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Price.Equal(decimal.RequireFromString("10.00")),
		"el precio al agregar es el autoritativo para la venta")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Cantidad por encima del stock: se recorta al stock (no se rechaza) y se
// señala el límite. Esta semántica difiere a propósito de AddToCart.
func TestUpdateQuantity_RecortaAlStock(t *testing.T) {
	snapshot := []entity.CatalogEntry{entryWith(7, "Leche", 3, "10.00")}
	cart := pos.NewCart()
	cart.AddToCart(snapshot[0])
	cart.AddToCart(snapshot[0]) // cantidad 2

	sig := cart.UpdateQuantity(7, 10, snapshot)
	assert.Equal(t, pos.SignalStockLimit, sig.Kind)
	assert.Equal(t, int64(3), sig.Limit)
	assert.Equal(t, int64(3), cart.Quantity(7), "recortado a stock, no rechazado")
	assertInvariants(t, cart, snapshot)
}

// Cantidad cero elimina la línea en lugar de dejarla en cero.
func TestUpdateQuantity_CeroEliminaLinea(t *testing.T) {
	snapshot := []entity.CatalogEntry{entryWith(7, "Leche", 3, "10.00")}
	cart := pos.NewCart()
	cart.AddToCart(snapshot[0])

	sig := cart.UpdateQuantity(7, 0, snapshot)
	assert.Equal(t, pos.SignalNone, sig.Kind)
	assert.True(t, cart.IsEmpty(), "una línea con cantidad 0 no existe")
}

func TestUpdateQuantity_NegativaEliminaLinea(t *testing.T) {
	snapshot := []entity.CatalogEntry{entryWith(7, "Leche", 3, "10.00")}
	cart := pos.NewCart()
	cart.AddToCart(snapshot[0])

	cart.UpdateQuantity(7, -4, snapshot)
	assert.True(t, cart.IsEmpty())
}

// Producto ausente del snapshot (línea obsoleta): la actualización se aplica
// sin recorte. Política documentada: la línea sigue siendo editable para que
// el cajero pueda corregir la venta.
func TestUpdateQuantity_SinEntradaEnSnapshotAplicaSinRecorte(t *testing.T) {
	stale := entryWith(7, "Leche", 3, "10.00")
	cart := pos.NewCart()
	cart.AddToCart(stale)

	sig := cart.UpdateQuantity(7, 50, nil) // snapshot ya no contiene el producto
	assert.Equal(t, pos.SignalNone, sig.Kind)
	assert.Equal(t, int64(50), cart.Quantity(7))
}

// Producto que no está en el carrito: no-op, sin señal.
func TestUpdateQuantity_ProductoAusenteEsNoOp(t *testing.T) {
	cart := pos.NewCart()
	sig := cart.UpdateQuantity(99, 5, nil)
	assert.Equal(t, pos.SignalNone, sig.Kind)
	assert.True(t, cart.IsEmpty())
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveFromCart / Subtotal
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveFromCart_AusenteNoModificaNada(t *testing.T) {
	p := entryWith(7, "Leche", 3, "10.00")
	cart := pos.NewCart()
	cart.AddToCart(p)

	cart.RemoveFromCart(1234)
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, int64(1), cart.Quantity(7))
}

func TestRemoveFromCart_EliminaLaLinea(t *testing.T) {
	a := entryWith(7, "Leche", 3, "10.00")
	b := entryWith(8, "Huevos", 5, "18500")
	cart := pos.NewCart()
	cart.AddToCart(a)
	cart.AddToCart(b)

	cart.RemoveFromCart(7)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, int64(8), cart.Lines()[0].StoreProductID)
}

// El subtotal siempre es la suma exacta de precio × cantidad, recalculada en
// cada lectura; nunca un acumulado que pueda desviarse.
func TestSubtotal_SumaExactaTrasMutaciones(t *testing.T) {
	snapshot := []entity.CatalogEntry{
		entryWith(1, "Leche", 10, "4200"),
		entryWith(2, "Huevos", 4, "18500"),
		entryWith(3, "Pan", 5, "7800"),
	}
	cart := pos.NewCart()
	cart.AddToCart(snapshot[0])
	cart.AddToCart(snapshot[1])
	cart.AddToCart(snapshot[2])
	cart.UpdateQuantity(1, 3, snapshot)
	cart.UpdateQuantity(2, 9, snapshot) // recorta a 4
	cart.RemoveFromCart(3)

	// Suma directa independiente sobre las líneas vigentes.
	expected := decimal.Zero
	for _, l := range cart.Lines() {
		expected = expected.Add(l.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}
	assert.True(t, cart.Subtotal().Equal(expected))
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("86600")), "3×4200 + 4×18500")
	assertInvariants(t, cart, snapshot)
}

// Lines devuelve una copia: mutar el slice devuelto no toca el carrito.
func TestLines_DevuelveCopia(t *testing.T) {
	cart := pos.NewCart()
	cart.AddToCart(entryWith(7, "Leche", 3, "10.00"))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, int64(1), cart.Quantity(7))
}

// Secuencia mixta de operaciones: los invariantes se sostienen en todo
// momento, sin importar el orden.
func TestCart_InvariantesBajoSecuenciaMixta(t *testing.T) {
	snapshot := []entity.CatalogEntry{
		entryWith(1, "Leche", 2, "4200"),
		entryWith(2, "Huevos", 1, "18500"),
		entryWith(3, "Pan", 0, "7800"),
	}
	cart := pos.NewCart()

	ops := []func(){
		func() { cart.AddToCart(snapshot[0]) },
		func() { cart.AddToCart(snapshot[2]) }, // sin stock, rechazado
		func() { cart.AddToCart(snapshot[0]) },
		func() { cart.AddToCart(snapshot[0]) }, // saturado, rechazado
		func() { cart.AddToCart(snapshot[1]) },
		func() { cart.UpdateQuantity(2, 7, snapshot) }, // recorta a 1
		func() { cart.UpdateQuantity(1, 0, snapshot) }, // elimina
		func() { cart.RemoveFromCart(3) },              // ausente, no-op
		func() { cart.AddToCart(snapshot[0]) },
	}
	for _, op := range ops {
		op()
		assertInvariants(t, cart, snapshot)
	}

	assert.Equal(t, int64(1), cart.Quantity(1))
	assert.Equal(t, int64(1), cart.Quantity(2))
	assert.Equal(t, int64(0), cart.Quantity(3))
}
