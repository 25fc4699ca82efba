package pos

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// CatalogStatus estado del query de catálogo.
type CatalogStatus int

const (
	CatalogIdle CatalogStatus = iota
	CatalogLoading
	CatalogError
	CatalogReady
)

// CatalogState snapshot observable del query para el renderizado: cargando,
// error y datos son estados mutuamente excluyentes (datos puede ser una
// lista vacía, que no es lo mismo que un error).
type CatalogState struct {
	Status  CatalogStatus
	Entries []entity.CatalogEntry
	Err     error
}

// CatalogQuery obtiene el catálogo de una tienda filtrado por término de
// búsqueda, con cache por (tienda, término). No posee estado mutable más
// allá del cache y del snapshot publicado. Cada Load emite a lo más un
// request; un request superado por otro más nuevo no publica su resultado
// como snapshot vigente (la respuesta sí se guarda en cache bajo su propia
// clave, sujeta al guard de secuencia del cache).
type CatalogQuery struct {
	api   SalesAPI
	cache CatalogCache

	mu    sync.Mutex
	seq   uint64 // secuencia del request más reciente emitido
	state CatalogState
}

// NewCatalogQuery construye el componente de consulta de catálogo.
func NewCatalogQuery(api SalesAPI, cache CatalogCache) *CatalogQuery {
	return &CatalogQuery{api: api, cache: cache, state: CatalogState{Status: CatalogIdle}}
}

// Load obtiene el catálogo de la tienda para el término dado. Sin tienda
// válida (storeID <= 0) devuelve vacío de inmediato, sin red y sin error.
// Un hit de cache tampoco toca la red.
func (q *CatalogQuery) Load(ctx context.Context, storeID int64, search string) ([]entity.CatalogEntry, error) {
	search = strings.TrimSpace(search)

	if storeID <= 0 {
		q.publish(CatalogState{Status: CatalogReady, Entries: []entity.CatalogEntry{}})
		return []entity.CatalogEntry{}, nil
	}

	if entries, ok := q.cache.Get(storeID, search); ok {
		q.publish(CatalogState{Status: CatalogReady, Entries: entries})
		return entries, nil
	}

	q.mu.Lock()
	q.seq++
	mySeq := q.seq
	q.state = CatalogState{Status: CatalogLoading}
	q.mu.Unlock()

	entries, err := q.api.FetchCatalog(ctx, storeID, search)

	q.mu.Lock()
	defer q.mu.Unlock()
	if err != nil {
		// Solo el request más reciente publica su error: el fallo de un
		// request ya superado no pisa el estado del siguiente.
		if mySeq == q.seq {
			q.state = CatalogState{Status: CatalogError, Err: err}
		}
		return nil, err
	}
	if entries == nil {
		entries = []entity.CatalogEntry{}
	}
	q.cache.Put(storeID, search, mySeq, entries)
	if mySeq == q.seq {
		q.state = CatalogState{Status: CatalogReady, Entries: entries}
	}
	return entries, nil
}

// State snapshot vigente para la UI.
func (q *CatalogQuery) State() CatalogState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Snapshot entradas del snapshot vigente (vacío si no hay datos). Es la
// fuente de verdad para la validación de stock del carrito.
func (q *CatalogQuery) Snapshot() []entity.CatalogEntry {
	return q.State().Entries
}

func (q *CatalogQuery) publish(s CatalogState) {
	q.mu.Lock()
	q.state = s
	q.mu.Unlock()
}
