// Command o2dctl herramientas de línea de comandos para soporte: evaluar el acceso
// de un usuario a una ruta y calcular los totales de una cotización sin levantar la API.
//
// Uso:
//
//	o2dctl access check /lead-to-order/quotation --system-access lead-to-order
//	o2dctl access default-path --page-access "Quotation,Leads"
//	o2dctl quote totals -f cotizacion.yaml
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "o2dctl",
		Short:         "Utilidades del pipeline O2D",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newAccessCmd(), newQuoteCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
