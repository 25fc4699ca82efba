package pos

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// SalesAPI puerto hacia el backend de ventas. Las tres operaciones que el
// terminal consume; toda la persistencia vive del lado del servidor.
type SalesAPI interface {
	// FetchCatalog lista los productos vendibles de una tienda, filtrados
	// opcionalmente por término de búsqueda.
	FetchCatalog(ctx context.Context, storeID int64, search string) ([]entity.CatalogEntry, error)
	// CreateSale registra una venta y devuelve su identificador y total.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.CreateSaleResponse, error)
	// GetSale recupera el detalle completo de una venta registrada.
	GetSale(ctx context.Context, saleID int64) (*entity.Sale, error)
}

// CatalogCache cache de snapshots de catálogo por (tienda, término).
// Put lleva la secuencia del fetch que produjo el snapshot: una respuesta
// atrasada (secuencia menor a la ya guardada para la misma clave) se descarta
// en lugar de pisar un resultado más reciente.
type CatalogCache interface {
	Get(storeID int64, search string) ([]entity.CatalogEntry, bool)
	Put(storeID int64, search string, seq uint64, entries []entity.CatalogEntry)
	// InvalidateStore descarta todos los snapshots de una tienda; se invoca
	// exactamente al confirmar una venta, para que la siguiente lectura
	// refleje el stock decrementado.
	InvalidateStore(storeID int64)
}

// FailureCategory clasificación de un fallo de red/servidor para el mensaje
// al usuario: error de entrada (4xx), fallo del servidor (5xx) o fallo
// genérico de transporte.
type FailureCategory string

const (
	FailureValidation FailureCategory = "validation"
	FailureServer     FailureCategory = "server"
	FailureNetwork    FailureCategory = "network"
)

// RequestError error categorizado que devuelven las implementaciones de
// SalesAPI ante respuestas no-2xx o fallos de transporte.
type RequestError struct {
	Category FailureCategory
	Status   int    // código HTTP; 0 en fallos de transporte
	Code     string // código machine-readable del backend, si lo hay
	Message  string
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend de ventas [%d %s]: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend de ventas (%s): %s", e.Category, e.Message)
}

// Categorize devuelve la categoría de fallo de un error de SalesAPI.
// Errores que no son RequestError se tratan como fallo de red genérico.
func Categorize(err error) FailureCategory {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Category
	}
	return FailureNetwork
}
