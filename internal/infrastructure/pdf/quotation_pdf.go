// Package pdf genera el documento PDF de una cotización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + GSTIN     │  QUOTATION N° + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  CLIENTE: Nombre + GSTIN + contacto                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción | Cant | Tarifa | Desc% | GST% | Imp │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Desc. / Base / GST / Desc. esp. / Total │
//	│  Importe en letras + Términos + Firma                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	"github.com/jhoicas/o2d-pipeline-api/pkg/inr"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 225, Green: 235, Blue: 245}
)

var _ appquote.QuotationPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa quotation.QuotationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotationPDF genera el PDF y devuelve sus bytes.
// Los importes usan "Rs." porque las fuentes estándar del PDF no incluyen el glifo ₹.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(_ context.Context, doc appquote.Document) ([]byte, error) {
	if doc.Quotation == nil {
		return nil, fmt.Errorf("pdf: cotización vacía")
	}
	q := doc.Quotation

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Quotation "+q.Number, true).
		WithAuthor(nonEmpty(doc.Issuer.Name, "O2D"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q, doc.Issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(doc.Issuer))
	m.AddRows(customerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(doc.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc.Totals)...)
	m.AddRows(wordsRow(doc.Totals))

	if strings.TrimSpace(q.Terms) != "" {
		m.AddRows(termsRows(q.Terms)...)
	}
	m.AddRows(signatureRow(doc.Issuer))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + GSTIN (izq) y número + fechas (der).
func headerRow(q *entity.Quotation, issuer appquote.Issuer) core.Row {
	dates := "Date: " + q.Date.Format("02/01/2006")
	if q.ValidUntil != nil {
		dates += "   Valid until: " + q.ValidUntil.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(issuer.Name, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(issuer.GSTIN, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("QUOTATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(q.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(dates, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func issuerRow(issuer appquote.Issuer) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s   |   Ph: %s   |   Email: %s",
				nonEmpty(issuer.Address, "-"),
				nonEmpty(issuer.Phone, "-"),
				nonEmpty(issuer.Email, "-"),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

func customerRow(q *entity.Quotation) core.Row {
	contact := strings.TrimSpace(q.ContactPerson + " " + q.ContactPhone)
	return row.New(20).Add(
		col.New(12).Add(
			text.New("TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(q.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(nonEmpty(q.CustomerAddress, "-"), props.Text{Size: 8, Top: 10, Color: colorGray}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Contact: %s",
				nonEmpty(q.CustomerGSTIN, "-"), nonEmpty(contact, "-"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Description", 4, align.Left),
		h("Qty", 1, align.Right),
		h("Rate", 2, align.Right),
		h("Disc%", 1, align.Center),
		h("GST%", 1, align.Center),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func tableItemRows(items []*entity.QuotationItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		qty := it.Quantity.String()
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		desc := it.Description
		if it.ProductCode != "" {
			desc = it.ProductCode + " - " + desc
		}
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Position), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(desc, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money(it.Rate), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(percent(it.DiscountPercent), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(percent(it.GSTPercent), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money(it.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

// totalLine una fila de la tabla de totales.
type totalLine struct {
	label string
	value string
	grand bool
}

// totalLines filas del bloque de totales. Los descuentos en cero no se imprimen;
// el total mostrado nunca es negativo.
func totalLines(t domainquote.Totals) []totalLine {
	lines := []totalLine{{label: "Subtotal", value: money(t.Subtotal)}}
	if !t.TotalFlatDiscount.IsZero() {
		lines = append(lines, totalLine{label: "Discount", value: "- " + money(t.TotalFlatDiscount)})
	}
	lines = append(lines, totalLine{label: "Taxable Amount", value: money(t.TaxableAmount)})
	if t.IsIGST() {
		lines = append(lines, totalLine{label: "IGST @ " + percent(t.IGSTRate), value: money(t.IGSTAmount)})
	} else {
		lines = append(lines,
			totalLine{label: "CGST @ " + percent(t.CGSTRate), value: money(t.CGSTAmount)},
			totalLine{label: "SGST @ " + percent(t.SGSTRate), value: money(t.SGSTAmount)},
		)
	}
	if !t.SpecialDiscount.IsZero() {
		lines = append(lines, totalLine{label: "Special Discount", value: "- " + money(t.SpecialDiscount)})
	}
	return append(lines, totalLine{label: "GRAND TOTAL", value: money(t.DisplayGrandTotal()), grand: true})
}

func totalsRows(t domainquote.Totals) []core.Row {
	lines := totalLines(t)
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		style := props.Text{Size: 9, Align: align.Right, Right: 2, Top: 1}
		if l.grand {
			style.Style = fontstyle.Bold
			style.Size = 10
			style.Color = colorPrimary
		}
		labelStyle := style
		labelStyle.Style = fontstyle.Bold
		out = append(out, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(l.label+":", labelStyle)),
			col.New(3).Add(text.New(l.value, style)),
		))
	}
	return out
}

func wordsRow(t domainquote.Totals) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Amount in words: "+inr.Words(t.DisplayGrandTotal()), props.Text{
			Style: fontstyle.BoldItalic, Size: 8, Top: 3,
		}),
	))
}

func termsRows(terms string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("TERMS & CONDITIONS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		)),
	}
	for _, l := range strings.Split(strings.TrimSpace(terms), "\n") {
		if l = strings.TrimSpace(l); l == "" {
			continue
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

func signatureRow(issuer appquote.Issuer) core.Row {
	return row.New(24).Add(
		col.New(7),
		col.New(5).Add(
			text.New("For "+nonEmpty(issuer.Name, "-"), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 4,
			}),
			text.New("Authorised Signatory", props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money importe con agrupación india y prefijo Rs.
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-Rs. " + inr.Group(d.Neg())
	}
	return "Rs. " + inr.Group(d)
}

func percent(d decimal.Decimal) string {
	return d.String() + "%"
}
