package main

import (
	"fmt"

	"github.com/spf13/cobra"

	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
)

// grantFlags acceso en la codificación heredada separada por comas.
type grantFlags struct {
	systemAccess string
	pageAccess   string
	role         string
	userType     string
}

func (f *grantFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.systemAccess, "system-access", "", "sistemas separados por comas (o2d,batchcode,lead-to-order)")
	cmd.Flags().StringVar(&f.pageAccess, "page-access", "", "rutas o nombres de página separados por comas")
	cmd.Flags().StringVar(&f.role, "role", "", "rol del usuario")
	cmd.Flags().StringVar(&f.userType, "user-type", "", "tipo de usuario")
}

func (f *grantFlags) grant() *domainaccess.Grant {
	return domainaccess.ParseGrant(f.systemAccess, f.pageAccess, f.role, f.userType)
}

func newAccessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Evaluar reglas de acceso del dashboard",
	}
	cmd.AddCommand(newAccessCheckCmd(), newAccessDefaultPathCmd(), newAccessPagesCmd())
	return cmd
}

func newAccessCheckCmd() *cobra.Command {
	var flags grantFlags
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Indica si el acceso permite abrir path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := flags.grant()
			out := cmd.OutOrStdout()
			if domainaccess.IsPathAllowed(args[0], g) {
				fmt.Fprintf(out, "allowed  %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "denied   %s -> %s\n", args[0], domainaccess.DefaultAllowedPath(g))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newAccessDefaultPathCmd() *cobra.Command {
	var flags grantFlags
	cmd := &cobra.Command{
		Use:   "default-path",
		Short: "Ruta de aterrizaje tras el login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), domainaccess.DefaultAllowedPath(flags.grant()))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newAccessPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "Tabla de páginas conocidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range domainaccess.DefaultPages {
				system := p.System
				if system == "" {
					system = "-"
				}
				fmt.Fprintf(out, "%-14s %-20s %s\n", system, p.Name, p.Route)
			}
			return nil
		},
	}
}
