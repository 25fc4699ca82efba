package cache

import (
	"strings"
	"sync"

	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// Verificar en tiempo de compilación que CatalogCache implementa el puerto.
var _ pos.CatalogCache = (*CatalogCache)(nil)

type cacheKey struct {
	storeID int64
	search  string
}

type snapshot struct {
	entries []entity.CatalogEntry
	seq     uint64
}

// CatalogCache cache en memoria de snapshots de catálogo, indexado por
// (tienda, término normalizado). Varias vistas pueden leerlo; solo el fetch
// del CatalogQuery escribe. Cada snapshot guarda la secuencia del request que
// lo produjo: un Put con secuencia menor a la ya almacenada para la misma
// clave se descarta, de modo que una respuesta atrasada nunca pisa un
// resultado más reciente.
type CatalogCache struct {
	mu    sync.RWMutex
	items map[cacheKey]snapshot
}

// New construye un cache vacío.
func New() *CatalogCache {
	return &CatalogCache{items: make(map[cacheKey]snapshot)}
}

// Get devuelve el snapshot cacheado para (tienda, término), si existe.
func (c *CatalogCache) Get(storeID int64, search string) ([]entity.CatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.items[key(storeID, search)]
	if !ok {
		return nil, false
	}
	return s.entries, true
}

// Put almacena un snapshot. Se ignora si ya hay uno más reciente (secuencia
// mayor o igual de otro fetch) bajo la misma clave.
func (c *CatalogCache) Put(storeID int64, search string, seq uint64, entries []entity.CatalogEntry) {
	k := key(storeID, search)
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.items[k]; ok && cur.seq >= seq {
		return
	}
	c.items[k] = snapshot{entries: entries, seq: seq}
}

// InvalidateStore descarta todos los snapshots de la tienda. Se invoca al
// confirmar una venta para que la siguiente lectura refleje el stock
// decrementado.
func (c *CatalogCache) InvalidateStore(storeID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if k.storeID == storeID {
			delete(c.items, k)
		}
	}
}

// Len número de snapshots almacenados.
func (c *CatalogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func key(storeID int64, search string) cacheKey {
	return cacheKey{storeID: storeID, search: strings.TrimSpace(search)}
}
