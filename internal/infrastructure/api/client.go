package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-terminal/internal/application/dto"
	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
	"github.com/jhoicas/pos-terminal/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa SalesAPI.
var _ pos.SalesAPI = (*Client)(nil)

// Client implementa pos.SalesAPI contra la API REST del backend de ventas.
// Usa net/http de la librería estándar con timeout explícito; además cada
// llamada recibe context del orquestador. Las respuestas se validan en este
// borde antes de convertirse en entidades: datos externos nunca se confían
// implícitamente.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin slash final, ej.
// "https://api.tienda.example.com". token vacío = sin header Authorization.
func NewClient(baseURL, token string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.Component("sales-api"),
	}
}

// FetchCatalog GET /api/stores/{storeId}/catalog?search=...
func (c *Client) FetchCatalog(ctx context.Context, storeID int64, search string) ([]entity.CatalogEntry, error) {
	endpoint := fmt.Sprintf("%s/api/stores/%d/catalog", c.baseURL, storeID)
	if search != "" {
		endpoint += "?search=" + url.QueryEscape(search)
	}

	var out []dto.CatalogEntryResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}

	entries := make([]entity.CatalogEntry, 0, len(out))
	for _, r := range out {
		if err := validateCatalogEntry(r); err != nil {
			return nil, &pos.RequestError{
				Category: pos.FailureServer,
				Code:     "INVALID_PAYLOAD",
				Message:  fmt.Sprintf("entrada de catálogo inválida: %v", err),
			}
		}
		entries = append(entries, entity.CatalogEntry{
			StoreProductID:    r.StoreProductID,
			ProductID:         r.ProductID,
			Name:              r.Name,
			SKU:               r.SKU,
			Unit:              r.Unit,
			Price:             r.Price,
			QuantityInStock:   r.QuantityInStock,
			LowStockThreshold: r.LowStockThreshold,
		})
	}
	return entries, nil
}

// CreateSale POST /api/sales.
func (c *Client) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	endpoint := c.baseURL + "/api/sales"

	var out dto.CreateSaleResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &out); err != nil {
		return nil, err
	}
	if out.SaleID <= 0 {
		return nil, &pos.RequestError{
			Category: pos.FailureServer,
			Code:     "INVALID_PAYLOAD",
			Message:  "el backend no devolvió un sale_id válido",
		}
	}
	return &out, nil
}

// GetSale GET /api/sales/{id}.
func (c *Client) GetSale(ctx context.Context, saleID int64) (*entity.Sale, error) {
	endpoint := fmt.Sprintf("%s/api/sales/%d", c.baseURL, saleID)

	var out dto.SaleDetailResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, 0, len(out.SaleItems))
	for _, it := range out.SaleItems {
		items = append(items, entity.SaleItem{
			StoreProductID: it.StoreProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			PriceAtSale:    it.PriceAtSale,
		})
	}
	return &entity.Sale{
		ID:            out.ID,
		StoreID:       out.StoreID,
		CashierID:     out.CashierID,
		PaymentStatus: out.PaymentStatus,
		Total:         out.Total,
		SaleItems:     items,
		CashierName:   out.Cashier.Name,
		StoreName:     out.Store.Name,
		CreatedAt:     out.CreatedAt,
	}, nil
}

// doJSON emite un request JSON y decodifica la respuesta en out. Los fallos
// de transporte y los status no-2xx se traducen a *pos.RequestError
// categorizado (4xx = validación, 5xx = servidor, transporte = red).
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("request_id", requestID).Str("url", endpoint).Err(err).Msg("fallo de transporte")
		return &pos.RequestError{Category: pos.FailureNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &pos.RequestError{Category: pos.FailureNetwork, Message: "leer respuesta: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromStatus(resp.StatusCode, raw, requestID, endpoint)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &pos.RequestError{
				Category: pos.FailureServer,
				Status:   resp.StatusCode,
				Code:     "INVALID_PAYLOAD",
				Message:  "respuesta no es JSON válido: " + err.Error(),
			}
		}
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Msg("request completado")
	return nil
}

// errorFromStatus mapea el status HTTP a la taxonomía de fallos: 4xx error de
// entrada, 5xx fallo del servidor. Intenta extraer el cuerpo de error
// machine-readable del backend.
func (c *Client) errorFromStatus(status int, raw []byte, requestID, endpoint string) error {
	var errBody dto.ErrorResponse
	_ = json.Unmarshal(raw, &errBody)
	if errBody.Message == "" {
		errBody.Message = http.StatusText(status)
	}

	category := pos.FailureServer
	if status >= 400 && status < 500 {
		category = pos.FailureValidation
	}

	c.log.Warn().
		Str("request_id", requestID).
		Str("url", endpoint).
		Int("status", status).
		Str("code", errBody.Code).
		Msg("respuesta de error del backend")

	return &pos.RequestError{
		Category: category,
		Status:   status,
		Code:     errBody.Code,
		Message:  errBody.Message,
	}
}

func validateCatalogEntry(r dto.CatalogEntryResponse) error {
	switch {
	case r.StoreProductID <= 0:
		return fmt.Errorf("store_product_id inválido %d", r.StoreProductID)
	case r.Name == "":
		return fmt.Errorf("producto %d sin nombre", r.StoreProductID)
	case r.Price.LessThan(decimal.Zero):
		return fmt.Errorf("producto %d con precio negativo", r.StoreProductID)
	case r.QuantityInStock < 0:
		return fmt.Errorf("producto %d con stock negativo", r.StoreProductID)
	case r.LowStockThreshold < 0:
		return fmt.Errorf("producto %d con umbral negativo", r.StoreProductID)
	}
	return nil
}
