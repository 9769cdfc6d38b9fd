package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	"github.com/jhoicas/o2d-pipeline-api/pkg/inr"
)

// yamlAmount importe tolerante: "1,000", 12.5, vacío o null (0).
type yamlAmount struct {
	decimal.Decimal
}

func (a *yamlAmount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("línea %d: se esperaba un valor escalar", n.Line)
	}
	if n.Tag == "!!null" {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = domainquote.Coerce(n.Value)
	return nil
}

func (a *yamlAmount) ptr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal
	return &d
}

// quoteFile cotización en YAML para calcular totales fuera de la API.
type quoteFile struct {
	TaxMode           string      `yaml:"tax_mode"`
	IGSTRate          *yamlAmount `yaml:"igst_rate"`
	CGSTRate          *yamlAmount `yaml:"cgst_rate"`
	SGSTRate          *yamlAmount `yaml:"sgst_rate"`
	TotalFlatDiscount yamlAmount  `yaml:"total_flat_discount"`
	SpecialDiscount   yamlAmount  `yaml:"special_discount"`
	Items             []struct {
		Description     string     `yaml:"description"`
		Quantity        yamlAmount `yaml:"quantity"`
		Rate            yamlAmount `yaml:"rate"`
		DiscountPercent yamlAmount `yaml:"discount_percent"`
		GSTPercent      yamlAmount `yaml:"gst_percent"`
	} `yaml:"items"`
}

func (q quoteFile) totals() domainquote.Totals {
	lines := make([]domainquote.LineItem, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, domainquote.LineItem{
			Quantity:        it.Quantity.Decimal,
			Rate:            it.Rate.Decimal,
			DiscountPercent: it.DiscountPercent.Decimal,
			GSTPercent:      it.GSTPercent.Decimal,
		})
	}
	mode := domainquote.ParseTaxMode(q.TaxMode, q.IGSTRate.ptr(), q.CGSTRate.ptr(), q.SGSTRate.ptr(), domainquote.DefaultRates())
	return domainquote.ComputeTotals(lines, q.TotalFlatDiscount.Decimal, mode, q.SpecialDiscount.Decimal)
}

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Cálculos de cotizaciones",
	}
	cmd.AddCommand(newQuoteTotalsCmd())
	return cmd
}

func newQuoteTotalsCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Calcula los totales de una cotización en YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("abrir %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}
			var q quoteFile
			if err := yaml.NewDecoder(r).Decode(&q); err != nil {
				return fmt.Errorf("leer cotización: %w", err)
			}
			t := q.totals()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(domainquote.ToPayload(t))
			}
			printTotals(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "archivo YAML (- o vacío: stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime el payload JSON")
	return cmd
}

func printTotals(w io.Writer, t domainquote.Totals) {
	row := func(label string, d decimal.Decimal) {
		fmt.Fprintf(w, "%-18s %16s\n", label, inr.Format(d))
	}
	row("Subtotal", t.Subtotal)
	row("Flat discount", t.TotalFlatDiscount)
	row("Taxable", t.TaxableAmount)
	if t.IsIGST() {
		row("IGST @ "+t.IGSTRate.String()+"%", t.IGSTAmount)
	} else {
		row("CGST @ "+t.CGSTRate.String()+"%", t.CGSTAmount)
		row("SGST @ "+t.SGSTRate.String()+"%", t.SGSTAmount)
	}
	row("Special discount", t.SpecialDiscount)
	row("Grand total", t.DisplayGrandTotal())
	if t.GrandTotal.IsNegative() {
		fmt.Fprintf(w, "%-18s %16s\n", "Raw total", t.GrandTotal.StringFixed(2))
	}
	fmt.Fprintln(w, inr.Words(t.DisplayGrandTotal()))
}
