package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleDocument() appquote.Document {
	items := []domainquote.LineItem{{Quantity: d("2"), Rate: d("100"), DiscountPercent: d("10"), GSTPercent: d("18")}}
	return appquote.Document{
		Issuer: appquote.Issuer{Name: "Steel Plant Pvt Ltd", GSTIN: "22AAAAA0000A1Z5"},
		Quotation: &entity.Quotation{
			Number:       "QT-2026-1",
			CustomerName: "Acme Builders",
			Date:         time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
			Terms:        "Prices ex-works.\nValid for 15 days.",
		},
		Items: []*entity.QuotationItem{{
			Position: 1, ProductCode: "MS-PIPE-50", Description: "MS Pipe", Unit: "MT",
			Quantity: d("2"), Rate: d("100"), DiscountPercent: d("10"), GSTPercent: d("18"), Amount: d("180"),
		}},
		Totals: domainquote.ComputeTotals(items, decimal.Zero, domainquote.DefaultTaxMode(), decimal.Zero),
	}
}

func TestGenerateQuotationPDF_GeneraDocumento(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateQuotationPDF(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateQuotationPDF_SinCotizacion(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateQuotationPDF(context.Background(), appquote.Document{})
	assert.Error(t, err)
}

func TestTotalLines_CGSTSGST(t *testing.T) {
	lines := totalLines(sampleDocument().Totals)

	labels := make([]string, 0, len(lines))
	for _, l := range lines {
		labels = append(labels, l.label)
	}
	assert.Equal(t, []string{"Subtotal", "Taxable Amount", "CGST @ 9%", "SGST @ 9%", "GRAND TOTAL"}, labels)
	assert.Equal(t, "Rs. 212.40", lines[len(lines)-1].value)
	assert.True(t, lines[len(lines)-1].grand)
}

func TestTotalLines_TotalNegativoSeMuestraEnCero(t *testing.T) {
	items := []domainquote.LineItem{{Quantity: d("1"), Rate: d("100")}}
	totals := domainquote.ComputeTotals(items, d("10"), domainquote.IGST{Rate: d("18")}, d("500"))

	lines := totalLines(totals)
	labels := make([]string, 0, len(lines))
	for _, l := range lines {
		labels = append(labels, l.label)
	}
	assert.Equal(t, []string{"Subtotal", "Discount", "Taxable Amount", "IGST @ 18%", "Special Discount", "GRAND TOTAL"}, labels)
	assert.Equal(t, "Rs. 0.00", lines[len(lines)-1].value)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "Rs. 1,23,456.70", money(d("123456.7")))
	assert.Equal(t, "-Rs. 87.60", money(d("-87.6")))
}
