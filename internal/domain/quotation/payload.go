package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payload forma de los totales que recibe el colaborador de guardado.
// Los importes viajan como cadenas con 2 decimales para no arrastrar errores de coma flotante.
type Payload struct {
	Subtotal          string `json:"subtotal"`
	TotalFlatDiscount string `json:"total_flat_discount"`
	TaxableAmount     string `json:"taxable_amount"`
	TaxMode           string `json:"tax_mode"`
	IGSTRate          string `json:"igst_rate,omitempty"`
	IGSTAmount        string `json:"igst_amount,omitempty"`
	CGSTRate          string `json:"cgst_rate,omitempty"`
	CGSTAmount        string `json:"cgst_amount,omitempty"`
	SGSTRate          string `json:"sgst_rate,omitempty"`
	SGSTAmount        string `json:"sgst_amount,omitempty"`
	SpecialDiscount   string `json:"special_discount"`
	GrandTotal        string `json:"grand_total"`
	DisplayGrandTotal string `json:"display_grand_total"`
}

func fixed2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ToPayload serializa los totales.
func ToPayload(t Totals) Payload {
	p := Payload{
		Subtotal:          fixed2(t.Subtotal),
		TotalFlatDiscount: fixed2(t.TotalFlatDiscount),
		TaxableAmount:     fixed2(t.TaxableAmount),
		TaxMode:           t.Mode,
		SpecialDiscount:   fixed2(t.SpecialDiscount),
		GrandTotal:        fixed2(t.GrandTotal),
		DisplayGrandTotal: fixed2(t.DisplayGrandTotal()),
	}
	if t.IsIGST() {
		p.IGSTRate = fixed2(t.IGSTRate)
		p.IGSTAmount = fixed2(t.IGSTAmount)
	} else {
		p.CGSTRate = fixed2(t.CGSTRate)
		p.CGSTAmount = fixed2(t.CGSTAmount)
		p.SGSTRate = fixed2(t.SGSTRate)
		p.SGSTAmount = fixed2(t.SGSTAmount)
	}
	return p
}

// FromPayload reconstruye los totales. Campos vacíos valen 0; un importe no numérico es error.
func FromPayload(p Payload) (Totals, error) {
	var t Totals
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"subtotal", p.Subtotal, &t.Subtotal},
		{"total_flat_discount", p.TotalFlatDiscount, &t.TotalFlatDiscount},
		{"taxable_amount", p.TaxableAmount, &t.TaxableAmount},
		{"igst_rate", p.IGSTRate, &t.IGSTRate},
		{"igst_amount", p.IGSTAmount, &t.IGSTAmount},
		{"cgst_rate", p.CGSTRate, &t.CGSTRate},
		{"cgst_amount", p.CGSTAmount, &t.CGSTAmount},
		{"sgst_rate", p.SGSTRate, &t.SGSTRate},
		{"sgst_amount", p.SGSTAmount, &t.SGSTAmount},
		{"special_discount", p.SpecialDiscount, &t.SpecialDiscount},
		{"grand_total", p.GrandTotal, &t.GrandTotal},
	}
	for _, f := range fields {
		if f.raw == "" {
			*f.dst = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return Totals{}, fmt.Errorf("payload: %s inválido %q: %w", f.name, f.raw, err)
		}
		*f.dst = d
	}
	t.Mode = p.TaxMode
	if t.Mode != TaxModeIGST {
		t.Mode = TaxModeCGSTSGST
	}
	return t, nil
}
