package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagStoreID   int64
	flagCashierID int64
	flagBaseURL   string
)

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Terminal punto de venta contra el backend de ventas",
	Long: `pos es el terminal de punto de venta: consulta el catálogo de una
tienda, arma un carrito validado contra el stock y registra la venta en el
backend de ventas.

La tienda y el cajero activos se toman de POS_STORE_ID y POS_CASHIER_ID (o de
los flags --store y --cashier). El backend se configura con POS_API_BASE_URL;
para desarrollo local, 'pos sandbox' levanta un backend en memoria con datos
de demostración.`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz. Lo invoca main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagStoreID, "store", 0, "ID de la tienda activa (default: POS_STORE_ID)")
	rootCmd.PersistentFlags().Int64Var(&flagCashierID, "cashier", 0, "ID del cajero activo (default: POS_CASHIER_ID)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "api", "", "URL base del backend de ventas (default: POS_API_BASE_URL)")
}
