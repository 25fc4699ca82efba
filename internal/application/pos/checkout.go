package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/domain"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// Phase fase del envío de venta: Idle → Submitting → {Succeeded, Failed}.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// DetailOutcome sub-estado del fetch de detalle dentro de Succeeded.
type DetailOutcome int

const (
	DetailNone DetailOutcome = iota
	DetailFetched
	DetailFailed
)

// SaleResult resultado de un ProcessSale exitoso.
type SaleResult struct {
	Summary *entity.CompletedSaleSummary
	Detail  DetailOutcome
	Notice  string // notificación para el usuario
}

// DefaultRequestTimeout timeout por llamada al backend cuando la
// configuración no indica otro.
const DefaultRequestTimeout = 10 * time.Second

// Checkout orquesta la conversión del carrito en una venta registrada:
// precondiciones locales, armado y validación del payload, POST de creación
// y GET de detalle (estrictamente secuencial, nunca ante fallo del POST).
// Ante fallo de creación el carrito queda intacto para que el usuario
// reintente sin recargar los ítems; el éxito vacía el carrito e invalida el
// cache de catálogo de la tienda. No hay reintentos automáticos.
type Checkout struct {
	api     SalesAPI
	cache   CatalogCache
	timeout time.Duration
	phase   Phase
}

// NewCheckout construye el orquestador. timeout <= 0 usa DefaultRequestTimeout.
func NewCheckout(api SalesAPI, cache CatalogCache, timeout time.Duration) *Checkout {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Checkout{api: api, cache: cache, timeout: timeout, phase: PhaseIdle}
}

// Phase fase actual del orquestador.
func (ck *Checkout) Phase() Phase {
	return ck.phase
}

// ProcessSale registra la venta construida desde el carrito. Las
// precondiciones (tienda seleccionada, carrito no vacío) y la validación de
// forma del payload se verifican antes de tocar la red; un fallo local nunca
// llega a la capa de transporte. El precio de cada ítem es el snapshot del
// carrito al momento de agregar, no el vigente en catálogo (semántica
// punto-en-el-tiempo deliberada).
func (ck *Checkout) ProcessSale(ctx context.Context, cart *Cart, storeID, cashierID int64) (*SaleResult, error) {
	if storeID <= 0 {
		ck.phase = PhaseFailed
		return nil, domain.ErrStoreNotSelected
	}
	if cart.IsEmpty() {
		ck.phase = PhaseFailed
		return nil, domain.ErrCartEmpty
	}

	req := buildPayload(cart, storeID, cashierID)
	if err := validatePayload(req); err != nil {
		ck.phase = PhaseFailed
		return nil, err
	}

	ck.phase = PhaseSubmitting

	createCtx, cancel := context.WithTimeout(ctx, ck.timeout)
	defer cancel()
	created, err := ck.api.CreateSale(createCtx, req)
	if err != nil {
		// El carrito se preserva sin cambios: el reintento es decisión del
		// usuario.
		ck.phase = PhaseFailed
		return nil, err
	}

	result := &SaleResult{}
	detailCtx, cancelDetail := context.WithTimeout(ctx, ck.timeout)
	defer cancelDetail()
	sale, detailErr := ck.api.GetSale(detailCtx, created.SaleID)
	if detailErr != nil || sale == nil {
		// No fatal: la venta ya está confirmada en el servidor; solo se
		// degrada el recibo a un resumen mínimo.
		result.Summary = entity.PartialSummary(created.SaleID, created.Total)
		result.Detail = DetailFailed
		result.Notice = fmt.Sprintf("venta #%d registrada, pero no fue posible recuperar el detalle del recibo", created.SaleID)
	} else {
		result.Summary = entity.SummaryFromSale(sale)
		result.Detail = DetailFetched
		result.Notice = fmt.Sprintf("venta #%d registrada por %s", sale.ID, sale.Total.StringFixed(2))
	}

	cart.Reset()
	ck.cache.InvalidateStore(storeID)
	ck.phase = PhaseSucceeded
	return result, nil
}

// buildPayload transforma el carrito más el contexto tienda/cajero en el
// cuerpo de creación de venta. Derivado y efímero: se computa al cobrar,
// nunca se almacena.
func buildPayload(cart *Cart, storeID, cashierID int64) dto.CreateSaleRequest {
	lines := cart.Lines()
	items := make([]dto.SaleItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.SaleItemRequest{
			StoreProductID: l.StoreProductID,
			Quantity:       l.Quantity,
			PriceAtSale:    l.Price,
		})
	}
	return dto.CreateSaleRequest{
		StoreID:       storeID,
		CashierID:     cashierID,
		PaymentStatus: entity.PaymentStatusPaid,
		SaleItems:     items,
	}
}

// validatePayload valida la forma del payload antes del envío. Una violación
// es un fallo local de validación, no un error de red, y aborta antes de
// emitir cualquier request.
func validatePayload(req dto.CreateSaleRequest) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: store_id debe ser positivo", domain.ErrInvalidInput)
	}
	if req.CashierID <= 0 {
		return fmt.Errorf("%w: cashier_id debe ser positivo", domain.ErrInvalidInput)
	}
	if req.PaymentStatus != entity.PaymentStatusPaid {
		return fmt.Errorf("%w: payment_status no soportado %q", domain.ErrInvalidInput, req.PaymentStatus)
	}
	if len(req.SaleItems) == 0 {
		return fmt.Errorf("%w: sale_items no puede estar vacío", domain.ErrInvalidInput)
	}
	for _, it := range req.SaleItems {
		if it.StoreProductID <= 0 || it.Quantity < 1 || it.PriceAtSale.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: ítem de venta malformado (producto %d)", domain.ErrInvalidInput, it.StoreProductID)
		}
	}
	return nil
}

// FailureMessage mensaje específico para el usuario según el tipo de fallo.
// Cada modo de fallo produce una notificación distinta; el fallo silencioso
// está prohibido.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrCartEmpty):
		return "el carrito está vacío: agrega productos antes de cobrar"
	case errors.Is(err, domain.ErrStoreNotSelected):
		return "selecciona una tienda antes de cobrar"
	case errors.Is(err, domain.ErrInvalidInput):
		return "la venta tiene datos inválidos: " + err.Error()
	}
	switch Categorize(err) {
	case FailureValidation:
		return "el backend rechazó la venta por datos inválidos: " + err.Error()
	case FailureServer:
		return "error del servidor al registrar la venta, intenta de nuevo"
	default:
		return "no fue posible contactar al backend de ventas"
	}
}
