// Package xlsx exporta cotizaciones a hojas de cálculo con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	"github.com/jhoicas/o2d-pipeline-api/pkg/inr"
)

var _ appquote.SpreadsheetExporter = (*Exporter)(nil)

const (
	sheetName = "Quotation"
	lastCol   = "H"
	headerRow = 6
)

// Exporter implementa quotation.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportQuotation genera un XLSX con cabecera, líneas y totales.
// Los importes se escriben como números con formato #,##0.00 para poder operar con ellos.
func (e *Exporter) ExportQuotation(_ context.Context, doc appquote.Document) ([]byte, error) {
	if doc.Quotation == nil {
		return nil, fmt.Errorf("xlsx: cotización vacía")
	}
	q := doc.Quotation

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	widths := []float64{6, 44, 10, 8, 14, 8, 8, 16}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	// ── Cabecera ────────────────────────────────────────────────────────

	header := []string{
		doc.Issuer.Name,
		"Quotation " + q.Number,
		"Date: " + q.Date.Format("02/01/2006"),
		"Customer: " + q.CustomerName,
	}
	for i, v := range header {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", lastCol, i+1)); err != nil {
			return nil, fmt.Errorf("merge header: %w", err)
		}
		f.SetCellValue(sheetName, cell, sanitizeCell(v))
	}
	f.SetCellStyle(sheetName, "A1", lastCol+"1", st.title)

	titles := []string{"#", "Description", "Qty", "Unit", "Rate", "Disc%", "GST%", "Amount"}
	for i, h := range titles {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], headerRow), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), st.header)

	// ── Líneas ──────────────────────────────────────────────────────────

	row := headerRow + 1
	for _, it := range doc.Items {
		r := fmt.Sprint(row)
		desc := it.Description
		if it.ProductCode != "" {
			desc = it.ProductCode + " - " + desc
		}
		f.SetCellValue(sheetName, "A"+r, it.Position)
		f.SetCellValue(sheetName, "B"+r, sanitizeCell(desc))
		f.SetCellValue(sheetName, "C"+r, number(it.Quantity))
		f.SetCellValue(sheetName, "D"+r, sanitizeCell(it.Unit))
		f.SetCellValue(sheetName, "E"+r, number(it.Rate))
		f.SetCellValue(sheetName, "F"+r, number(it.DiscountPercent))
		f.SetCellValue(sheetName, "G"+r, number(it.GSTPercent))
		f.SetCellValue(sheetName, "H"+r, number(it.Amount))
		f.SetCellStyle(sheetName, "A"+r, "D"+r, st.cell)
		f.SetCellStyle(sheetName, "E"+r, "E"+r, st.money)
		f.SetCellStyle(sheetName, "F"+r, "G"+r, st.cell)
		f.SetCellStyle(sheetName, "H"+r, "H"+r, st.money)
		row++
	}

	// ── Totales ─────────────────────────────────────────────────────────

	row++
	for _, s := range summary(doc) {
		r := fmt.Sprint(row)
		f.SetCellValue(sheetName, "G"+r, s.label)
		f.SetCellStyle(sheetName, "G"+r, "G"+r, st.label)
		f.SetCellValue(sheetName, "H"+r, number(s.value))
		f.SetCellStyle(sheetName, "H"+r, "H"+r, st.total)
		row++
	}
	r := fmt.Sprint(row + 1)
	if err := f.MergeCell(sheetName, "A"+r, lastCol+r); err != nil {
		return nil, fmt.Errorf("merge words: %w", err)
	}
	f.SetCellValue(sheetName, "A"+r, "Amount in words: "+inr.Words(doc.Totals.DisplayGrandTotal()))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type summaryLine struct {
	label string
	value decimal.Decimal
}

// summary filas de totales; el total se muestra sin negativos.
func summary(doc appquote.Document) []summaryLine {
	t := doc.Totals
	lines := []summaryLine{
		{"Subtotal", t.Subtotal},
		{"Discount", t.TotalFlatDiscount},
		{"Taxable", t.TaxableAmount},
	}
	if t.IsIGST() {
		lines = append(lines, summaryLine{"IGST " + t.IGSTRate.String() + "%", t.IGSTAmount})
	} else {
		lines = append(lines,
			summaryLine{"CGST " + t.CGSTRate.String() + "%", t.CGSTAmount},
			summaryLine{"SGST " + t.SGSTRate.String() + "%", t.SGSTAmount},
		)
	}
	return append(lines,
		summaryLine{"Special Disc.", t.SpecialDiscount},
		summaryLine{"Grand Total", t.DisplayGrandTotal()},
	)
}

type styles struct {
	title, header, cell, money, label, total int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}},
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&st.cell, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&st.money, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), NumFmt: 4}},
		{&st.label, &excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&st.total, &excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return st, nil
}

func number(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// sanitizeCell evita que un texto que empieza por =, +, -, @ se interprete como fórmula.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
