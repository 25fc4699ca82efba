package commands

import (
	"fmt"

	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/infrastructure/api"
	"github.com/jhoicas/pos-terminal/internal/infrastructure/cache"
	"github.com/jhoicas/pos-terminal/pkg/config"
	"github.com/jhoicas/pos-terminal/pkg/logger"
)

// deps dependencias armadas para una sesión de terminal: cliente REST, cache
// de catálogo, carrito y orquestadores, más el contexto tienda/cajero.
type deps struct {
	cfg       *config.Config
	log       *logger.Logger
	catalog   *pos.CatalogQuery
	cart      *pos.Cart
	checkout  *pos.Checkout
	storeID   int64
	cashierID int64
}

// buildDeps carga configuración y construye el grafo de dependencias. Los
// flags tienen prioridad sobre las variables de entorno.
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if flagBaseURL != "" {
		cfg.API.BaseURL = flagBaseURL
	}
	storeID := cfg.POS.StoreID
	if flagStoreID > 0 {
		storeID = flagStoreID
	}
	cashierID := cfg.POS.CashierID
	if flagCashierID > 0 {
		cashierID = flagCashierID
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout(), log)
	catalogCache := cache.New()

	return &deps{
		cfg:       cfg,
		log:       log,
		catalog:   pos.NewCatalogQuery(client, catalogCache),
		cart:      pos.NewCart(),
		checkout:  pos.NewCheckout(client, catalogCache, cfg.API.Timeout()),
		storeID:   storeID,
		cashierID: cashierID,
	}, nil
}
