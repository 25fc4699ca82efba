package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// StoreInfo tienda registrada en el sandbox.
type StoreInfo struct {
	ID   int64
	Name string
}

// Cashier cajero registrado en el sandbox.
type Cashier struct {
	ID   int64
	Name string
}

// Store almacenamiento en memoria del backend sandbox: tiendas, catálogo por
// tienda y ventas registradas. Es una herramienta de desarrollo y prueba, no
// un backend real; un mutex simple alcanza.
type Store struct {
	mu         sync.Mutex
	stores     map[int64]StoreInfo
	cashiers   map[int64]Cashier
	catalog    map[int64][]entity.CatalogEntry // por tienda, orden estable
	sales      map[int64]entity.Sale
	nextSaleID int64
}

// New construye un almacenamiento vacío.
func New() *Store {
	return &Store{
		stores:   make(map[int64]StoreInfo),
		cashiers: make(map[int64]Cashier),
		catalog:  make(map[int64][]entity.CatalogEntry),
		sales:    make(map[int64]entity.Sale),
	}
}

// AddStore registra una tienda con su catálogo inicial.
func (s *Store) AddStore(info StoreInfo, entries []entity.CatalogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[info.ID] = info
	s.catalog[info.ID] = entries
}

// AddCashier registra un cajero.
func (s *Store) AddCashier(c Cashier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cashiers[c.ID] = c
}

// Catalog devuelve el catálogo de la tienda filtrado por término (substring
// sobre nombre o SKU, sin distinguir mayúsculas). domain.ErrNotFound si la
// tienda no existe.
func (s *Store) Catalog(storeID int64, search string) ([]entity.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stores[storeID]; !ok {
		return nil, domain.ErrNotFound
	}

	entries := s.catalog[storeID]
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]entity.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.SKU), term) {
			out = append(out, e)
		}
	}
	return out, nil
}

// CreateSale registra una venta: valida tienda, cajero y stock de cada ítem,
// decrementa el stock y calcula el total con los precios del request
// (price_at_sale). Todo o nada: un ítem sin stock aborta la venta completa
// sin decrementar nada.
func (s *Store) CreateSale(req dto.CreateSaleRequest) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.stores[req.StoreID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cashier, ok := s.cashiers[req.CashierID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if len(req.SaleItems) == 0 {
		return nil, domain.ErrInvalidInput
	}

	entries := s.catalog[req.StoreID]

	// Primera pasada: validar existencia y stock de todos los ítems.
	idxByProduct := make(map[int64]int, len(req.SaleItems))
	for _, it := range req.SaleItems {
		if it.Quantity < 1 || it.PriceAtSale.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		found := -1
		for i := range entries {
			if entries[i].StoreProductID == it.StoreProductID {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, domain.ErrNotFound
		}
		if entries[found].QuantityInStock < it.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		idxByProduct[it.StoreProductID] = found
	}

	// Segunda pasada: decrementar stock y armar el detalle.
	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(req.SaleItems))
	for _, it := range req.SaleItems {
		i := idxByProduct[it.StoreProductID]
		entries[i].QuantityInStock -= it.Quantity
		total = total.Add(it.PriceAtSale.Mul(decimal.NewFromInt(it.Quantity)))
		items = append(items, entity.SaleItem{
			StoreProductID: it.StoreProductID,
			ProductName:    entries[i].Name,
			Quantity:       it.Quantity,
			PriceAtSale:    it.PriceAtSale,
		})
	}

	s.nextSaleID++
	sale := entity.Sale{
		ID:            s.nextSaleID,
		StoreID:       req.StoreID,
		CashierID:     req.CashierID,
		PaymentStatus: req.PaymentStatus,
		Total:         total,
		SaleItems:     items,
		CashierName:   cashier.Name,
		StoreName:     info.Name,
		CreatedAt:     time.Now().UTC(),
	}
	s.sales[sale.ID] = sale
	return &sale, nil
}

// GetSale devuelve una venta por ID; domain.ErrNotFound si no existe.
func (s *Store) GetSale(id int64) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sale, nil
}

// SeedDemo carga datos de demostración: una tienda con productos típicos y
// dos cajeros. Pensado para `pos sandbox` en desarrollo local.
func SeedDemo() *Store {
	s := New()
	s.AddStore(StoreInfo{ID: 1, Name: "Tienda Centro"}, []entity.CatalogEntry{
		{StoreProductID: 1, ProductID: 100, Name: "Leche entera 1L", SKU: "LCH-001", Unit: "und", Price: decimal.NewFromInt(4200), QuantityInStock: 24, LowStockThreshold: 6},
		{StoreProductID: 2, ProductID: 101, Name: "Huevos AA x30", SKU: "HVO-030", Unit: "cubeta", Price: decimal.NewFromInt(18500), QuantityInStock: 10, LowStockThreshold: 3},
		{StoreProductID: 3, ProductID: 102, Name: "Pan tajado artesanal", SKU: "PAN-500", Unit: "und", Price: decimal.NewFromInt(7800), QuantityInStock: 5, LowStockThreshold: 5},
		{StoreProductID: 4, ProductID: 103, Name: "Café molido 500g", SKU: "CAF-500", Unit: "und", Price: decimal.NewFromInt(21900), QuantityInStock: 0, LowStockThreshold: 2},
	})
	s.AddStore(StoreInfo{ID: 2, Name: "Tienda Norte"}, []entity.CatalogEntry{
		{StoreProductID: 11, ProductID: 100, Name: "Leche entera 1L", SKU: "LCH-001", Unit: "und", Price: decimal.NewFromInt(4350), QuantityInStock: 12, LowStockThreshold: 6},
		{StoreProductID: 12, ProductID: 104, Name: "Arroz premium 5kg", SKU: "ARZ-5KG", Unit: "bulto", Price: decimal.NewFromInt(26400), QuantityInStock: 8, LowStockThreshold: 2},
	})
	s.AddCashier(Cashier{ID: 9, Name: "Carolina Méndez"})
	s.AddCashier(Cashier{ID: 10, Name: "Andrés Rojas"})
	return s
}
