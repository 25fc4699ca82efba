package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-terminal/internal/application/pos"
	"github.com/jhoicas/pos-terminal/internal/domain/entity"
	"github.com/jhoicas/pos-terminal/pkg/debounce"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Sesión interactiva de punto de venta",
	Long: `Abre una sesión interactiva de caja. Comandos dentro de la sesión:

  buscar <término>      busca en el catálogo (con debounce)
  agregar <id>          agrega una unidad al carrito
  cantidad <id> <n>     fija la cantidad de una línea
  quitar <id>           elimina una línea
  carrito               muestra el carrito y el subtotal
  cobrar                registra la venta y muestra el recibo
  salir                 termina la sesión`,
}

func init() {
	terminalCmd.RunE = runTerminal
	rootCmd.AddCommand(terminalCmd)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if d.storeID <= 0 {
		return fmt.Errorf("tienda no seleccionada: usa --store o POS_STORE_ID")
	}

	ctx := context.Background()
	searchDebouncer := debounce.New(d.cfg.POS.Debounce())
	defer searchDebouncer.Stop()

	fmt.Printf("sesión POS · tienda %d · cajero %d · escribe 'ayuda' para ver comandos\n", d.storeID, d.cashierID)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		verb, rest, _ := strings.Cut(line, " ")

		switch verb {
		case "", "ayuda":
			fmt.Println(terminalCmd.Long)

		case "buscar":
			term := strings.TrimSpace(rest)
			// Ráfagas de búsquedas colapsan en una sola consulta.
			searchDebouncer.Trigger(func() {
				entries, err := d.catalog.Load(ctx, d.storeID, term)
				if err != nil {
					color.Red("error al buscar: %s", err)
					return
				}
				if len(entries) == 0 {
					fmt.Println("sin resultados")
					return
				}
				printCatalog(entries)
			})

		case "agregar":
			id, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
			if err != nil {
				color.Red("uso: agregar <id>")
				break
			}
			entry := entity.FindEntry(d.catalog.Snapshot(), id)
			if entry == nil {
				color.Red("producto %d no está en los resultados actuales; usa 'buscar' primero", id)
				break
			}
			if sig := d.cart.AddToCart(*entry); sig.Kind != pos.SignalNone {
				color.Yellow("%s", sig.Message())
			} else {
				fmt.Printf("%s x%d\n", entry.Name, d.cart.Quantity(id))
			}

		case "cantidad":
			fields := strings.Fields(rest)
			if len(fields) != 2 {
				color.Red("uso: cantidad <id> <n>")
				break
			}
			id, err1 := strconv.ParseInt(fields[0], 10, 64)
			qty, err2 := strconv.ParseInt(fields[1], 10, 64)
			if err1 != nil || err2 != nil {
				color.Red("uso: cantidad <id> <n>")
				break
			}
			if sig := d.cart.UpdateQuantity(id, qty, d.catalog.Snapshot()); sig.Kind != pos.SignalNone {
				color.Yellow("%s", sig.Message())
			}

		case "quitar":
			id, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
			if err != nil {
				color.Red("uso: quitar <id>")
				break
			}
			d.cart.RemoveFromCart(id)

		case "carrito":
			printCart(d.cart)

		case "cobrar":
			result, err := d.checkout.ProcessSale(ctx, d.cart, d.storeID, d.cashierID)
			if err != nil {
				color.Red("%s", pos.FailureMessage(err))
				break
			}
			color.Green("%s", result.Notice)
			printReceipt(result.Summary)

		case "salir":
			return nil

		default:
			color.Red("comando desconocido %q; escribe 'ayuda'", verb)
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

func printCart(cart *pos.Cart) {
	if cart.IsEmpty() {
		fmt.Println("carrito vacío")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCANT\tPRECIO\tTOTAL")
	for _, l := range cart.Lines() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			l.StoreProductID, l.Name, l.Quantity, l.Price.StringFixed(2), l.LineTotal().StringFixed(2))
	}
	w.Flush()
	fmt.Printf("subtotal: %s\n", cart.Subtotal().StringFixed(2))
}
