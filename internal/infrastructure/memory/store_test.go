package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain"
	"github.com/jhoicas/pos-terminal/internal/infrastructure/memory"
)

func TestCatalog_TiendaDesconocida(t *testing.T) {
	s := memory.SeedDemo()
	_, err := s.Catalog(99, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_FiltraPorNombreYSKU(t *testing.T) {
	s := memory.SeedDemo()

	byName, err := s.Catalog(1, "LECHE")
	require.NoError(t, err)
	require.Len(t, byName, 1, "el filtro no distingue mayúsculas")
	assert.Equal(t, "Leche entera 1L", byName[0].Name)

	bySKU, err := s.Catalog(1, "hvo-030")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Huevos AA x30", bySKU[0].Name)

	all, err := s.Catalog(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 4, "sin término devuelve el catálogo completo")
}

func TestCreateSale_DecrementaStockYCalculaTotal(t *testing.T) {
	s := memory.SeedDemo()

	sale, err := s.CreateSale(dto.CreateSaleRequest{
		StoreID:       1,
		CashierID:     9,
		PaymentStatus: "paid",
		SaleItems: []dto.SaleItemRequest{
			{StoreProductID: 1, Quantity: 2, PriceAtSale: decimal.NewFromInt(4200)},
			{StoreProductID: 2, Quantity: 1, PriceAtSale: decimal.NewFromInt(18500)},
		},
	})

	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(26900)), "2×4200 + 18500")
	assert.Equal(t, "Carolina Méndez", sale.CashierName)
	assert.Equal(t, "Tienda Centro", sale.StoreName)
	require.Len(t, sale.SaleItems, 2)
	assert.Equal(t, "Leche entera 1L", sale.SaleItems[0].ProductName)

	// El stock quedó decrementado.
	entries, err := s.Catalog(1, "leche")
	require.NoError(t, err)
	assert.Equal(t, int64(22), entries[0].QuantityInStock)

	// La venta es recuperable por id.
	got, err := s.GetSale(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, got.ID)
}

// Todo o nada: si un ítem no tiene stock suficiente, la venta completa se
// aborta sin decrementar nada.
func TestCreateSale_StockInsuficienteAbortaTodo(t *testing.T) {
	s := memory.SeedDemo()

	_, err := s.CreateSale(dto.CreateSaleRequest{
		StoreID:       1,
		CashierID:     9,
		PaymentStatus: "paid",
		SaleItems: []dto.SaleItemRequest{
			{StoreProductID: 1, Quantity: 1, PriceAtSale: decimal.NewFromInt(4200)},
			{StoreProductID: 4, Quantity: 1, PriceAtSale: decimal.NewFromInt(21900)}, // agotado
		},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	entries, _ := s.Catalog(1, "leche")
	assert.Equal(t, int64(24), entries[0].QuantityInStock, "ningún stock fue decrementado")
}

func TestCreateSale_ReferenciasDesconocidas(t *testing.T) {
	s := memory.SeedDemo()
	base := dto.CreateSaleRequest{
		StoreID:       1,
		CashierID:     9,
		PaymentStatus: "paid",
		SaleItems:     []dto.SaleItemRequest{{StoreProductID: 1, Quantity: 1, PriceAtSale: decimal.NewFromInt(4200)}},
	}

	unknownStore := base
	unknownStore.StoreID = 99
	_, err := s.CreateSale(unknownStore)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unknownCashier := base
	unknownCashier.CashierID = 99
	_, err = s.CreateSale(unknownCashier)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unknownProduct := base
	unknownProduct.SaleItems = []dto.SaleItemRequest{{StoreProductID: 999, Quantity: 1, PriceAtSale: decimal.NewFromInt(1)}}
	_, err = s.CreateSale(unknownProduct)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSale_Desconocida(t *testing.T) {
	s := memory.SeedDemo()
	_, err := s.GetSale(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
