package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-terminal/internal/domain/entity"
)

var catalogSearch string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lista el catálogo de la tienda activa",
	Long: `Lista los productos vendibles de la tienda activa, opcionalmente
filtrados con --search. El stock agotado se marca en rojo y el stock bajo el
umbral en amarillo.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "término de búsqueda (nombre o SKU)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if d.storeID <= 0 {
		return fmt.Errorf("tienda no seleccionada: usa --store o POS_STORE_ID")
	}

	entries, err := d.catalog.Load(context.Background(), d.storeID, catalogSearch)
	if err != nil {
		return fmt.Errorf("consultar catálogo: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("sin resultados")
		return nil
	}

	printCatalog(entries)
	return nil
}

func printCatalog(entries []entity.CatalogEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tPRODUCTO\tUNIDAD\tPRECIO\tSTOCK")
	for _, e := range entries {
		stock := fmt.Sprintf("%d", e.QuantityInStock)
		switch {
		case e.QuantityInStock == 0:
			stock = color.RedString("agotado")
		case e.IsLowStock():
			stock = color.YellowString("%d (bajo)", e.QuantityInStock)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.StoreProductID, e.SKU, e.Name, e.Unit, e.Price.StringFixed(2), stock)
	}
	w.Flush()
}
