package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

// printReceipt imprime el recibo de una venta confirmada. Con un resumen
// parcial (detalle no recuperado) solo se muestran número y total.
func printReceipt(sum *entity.CompletedSaleSummary) {
	fmt.Println()
	fmt.Printf("── Recibo venta #%d ──\n", sum.ID)
	fmt.Printf("Tienda: %s · Cajero: %s\n", sum.StoreName, sum.CashierName)

	if sum.Partial {
		color.Yellow("detalle no disponible; conserva el número de venta")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, it := range sum.SaleItems {
			lineTotal := it.PriceAtSale.Mul(decimal.NewFromInt(it.Quantity))
			fmt.Fprintf(w, "%s\tx%d\t%s\t%s\n",
				it.ProductName, it.Quantity, it.PriceAtSale.StringFixed(2), lineTotal.StringFixed(2))
		}
		w.Flush()
	}

	total := color.New(color.Bold).Sprintf("TOTAL: %s", sum.Total.StringFixed(2))
	fmt.Println(total)
}
