// Package quotation calcula los importes de una cotización (subtotal, descuentos,
// GST y total) que alimentan tanto la vista previa como el PDF.
//
// Todo se recalcula desde cero en cada llamada: no hay estado acumulado, así que
// ComputeTotals con las mismas entradas siempre devuelve exactamente lo mismo.
package quotation

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineItem línea de cotización ya resuelta a valores numéricos.
type LineItem struct {
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	DiscountPercent decimal.Decimal // 0–100
	GSTPercent      decimal.Decimal // clase de impuesto informativa (0 o 18)
}

// Totals resultado del cálculo. GrandTotal es el valor aritmético y puede ser negativo;
// para presentación usar DisplayGrandTotal.
type Totals struct {
	Subtotal          decimal.Decimal
	TotalFlatDiscount decimal.Decimal
	TaxableAmount     decimal.Decimal
	Mode              string
	IGSTRate          decimal.Decimal
	CGSTRate          decimal.Decimal
	SGSTRate          decimal.Decimal
	IGSTAmount        decimal.Decimal
	CGSTAmount        decimal.Decimal
	SGSTAmount        decimal.Decimal
	SpecialDiscount   decimal.Decimal
	GrandTotal        decimal.Decimal
}

// Round2 redondeo monetario a 2 decimales.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Escalas con las que se persisten las columnas numéricas.
const (
	QuantityScale = 3
	MoneyScale    = 2
	PercentScale  = 2
)

// Quantize ajusta la línea a la escala de almacenamiento, de modo que los totales
// calculados antes de guardar coincidan con los recalculados tras leer.
func (li LineItem) Quantize() LineItem {
	return LineItem{
		Quantity:        li.Quantity.Round(QuantityScale),
		Rate:            li.Rate.Round(MoneyScale),
		DiscountPercent: li.DiscountPercent.Round(PercentScale),
		GSTPercent:      li.GSTPercent.Round(PercentScale),
	}
}

// QuantizeMode ajusta las tarifas del modo a su escala de almacenamiento.
func QuantizeMode(mode TaxMode) TaxMode {
	switch m := mode.(type) {
	case IGST:
		return IGST{Rate: m.Rate.Round(PercentScale)}
	case CGSTSGST:
		return CGSTSGST{CGSTRate: m.CGSTRate.Round(PercentScale), SGSTRate: m.SGSTRate.Round(PercentScale)}
	}
	return mode
}

// ComputeLineAmount = round2(cantidad × tarifa × (1 − descuento/100)).
// No valida rangos: eso es responsabilidad del formulario.
func ComputeLineAmount(item LineItem) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(item.DiscountPercent.Div(hundred))
	return Round2(item.Quantity.Mul(item.Rate).Mul(factor))
}

// Subtotal suma de los importes de línea.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(ComputeLineAmount(it))
	}
	return sum
}

// ComputeTotals calcula los totales de la cotización.
// El descuento plano se aplica antes del impuesto y el especial después.
// mode nil equivale a DefaultTaxMode().
func ComputeTotals(items []LineItem, totalFlatDiscount decimal.Decimal, mode TaxMode, specialDiscount decimal.Decimal) Totals {
	if mode == nil {
		mode = DefaultTaxMode()
	}
	subtotal := Subtotal(items)
	taxable := decimal.Max(decimal.Zero, subtotal.Sub(totalFlatDiscount))

	t := Totals{
		Subtotal:          subtotal,
		TotalFlatDiscount: totalFlatDiscount,
		TaxableAmount:     taxable,
		Mode:              mode.Kind(),
		IGSTAmount:        decimal.Zero,
		CGSTAmount:        decimal.Zero,
		SGSTAmount:        decimal.Zero,
		SpecialDiscount:   specialDiscount,
	}

	switch m := mode.(type) {
	case IGST:
		t.IGSTRate = m.Rate
		t.IGSTAmount = Round2(taxable.Mul(m.Rate).Div(hundred))
		t.GrandTotal = Round2(taxable.Add(t.IGSTAmount).Sub(specialDiscount))
	case CGSTSGST:
		t.CGSTRate = m.CGSTRate
		t.SGSTRate = m.SGSTRate
		t.CGSTAmount = Round2(taxable.Mul(m.CGSTRate).Div(hundred))
		t.SGSTAmount = Round2(taxable.Mul(m.SGSTRate).Div(hundred))
		t.GrandTotal = Round2(taxable.Add(t.CGSTAmount).Add(t.SGSTAmount).Sub(specialDiscount))
	}
	return t
}

// TaxTotal suma de los impuestos aplicados.
func (t Totals) TaxTotal() decimal.Decimal {
	return t.IGSTAmount.Add(t.CGSTAmount).Add(t.SGSTAmount)
}

// DisplayGrandTotal total para mostrar: nunca negativo.
func (t Totals) DisplayGrandTotal() decimal.Decimal {
	return decimal.Max(decimal.Zero, t.GrandTotal)
}

// IsIGST informa si el cálculo se hizo con IGST.
func (t Totals) IsIGST() bool {
	return t.Mode == TaxModeIGST
}
