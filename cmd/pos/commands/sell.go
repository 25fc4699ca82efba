package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

var sellCmd = &cobra.Command{
	Use:   "sell <id:cantidad> [id:cantidad ...]",
	Short: "Registra una venta directa desde la línea de comandos",
	Long: `Registra una venta no interactiva. Cada argumento es un par
id:cantidad, donde id es el store_product_id del producto en el catálogo de
la tienda activa (también se acepta sku:cantidad).

Ejemplo:
  pos sell 1:2 3:1
  pos sell LCH-001:2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSell,
}

func init() {
	rootCmd.AddCommand(sellCmd)
}

func runSell(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if d.storeID <= 0 {
		return fmt.Errorf("tienda no seleccionada: usa --store o POS_STORE_ID")
	}

	ctx := context.Background()
	snapshot, err := d.catalog.Load(ctx, d.storeID, "")
	if err != nil {
		return fmt.Errorf("consultar catálogo: %w", err)
	}

	for _, arg := range args {
		entry, qty, err := resolveItem(snapshot, arg)
		if err != nil {
			return err
		}
		if sig := d.cart.AddToCart(*entry); sig.Kind != pos.SignalNone {
			return fmt.Errorf("%s", sig.Message())
		}
		if qty > 1 {
			if sig := d.cart.UpdateQuantity(entry.StoreProductID, qty, snapshot); sig.Kind != pos.SignalNone {
				color.Yellow("%s", sig.Message())
			}
		}
	}

	result, err := d.checkout.ProcessSale(ctx, d.cart, d.storeID, d.cashierID)
	if err != nil {
		return fmt.Errorf("%s", pos.FailureMessage(err))
	}

	fmt.Println(result.Notice)
	printReceipt(result.Summary)
	return nil
}

// resolveItem interpreta un argumento id:cantidad (o sku:cantidad) contra el
// snapshot de catálogo.
func resolveItem(snapshot []entity.CatalogEntry, arg string) (*entity.CatalogEntry, int64, error) {
	key, qtyStr, found := strings.Cut(arg, ":")
	if !found || key == "" {
		return nil, 0, fmt.Errorf("argumento inválido %q: se espera id:cantidad", arg)
	}
	qty, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil || qty < 1 {
		return nil, 0, fmt.Errorf("cantidad inválida en %q", arg)
	}

	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		if entry := entity.FindEntry(snapshot, id); entry != nil {
			return entry, qty, nil
		}
		return nil, 0, fmt.Errorf("producto %d no está en el catálogo de la tienda", id)
	}
	for i := range snapshot {
		if strings.EqualFold(snapshot[i].SKU, key) {
			return &snapshot[i], qty, nil
		}
	}
	return nil, 0, fmt.Errorf("SKU %q no está en el catálogo de la tienda", key)
}
