package quotation

import "github.com/shopspring/decimal"

// Identificadores de modo de impuesto en el wire y en la base de datos.
const (
	TaxModeIGST     = "IGST"
	TaxModeCGSTSGST = "CGST_SGST"
)

// Tarifas por defecto del negocio (GST 18%: 9% + 9% intraestatal, 18% interestatal).
var (
	DefaultCGSTRate = decimal.NewFromInt(9)
	DefaultSGSTRate = decimal.NewFromInt(9)
	DefaultIGSTRate = decimal.NewFromInt(18)
)

// TaxMode unión cerrada: IGST o CGST+SGST. Solo este paquete puede implementarla.
type TaxMode interface {
	Kind() string
	taxMode()
}

// IGST impuesto integrado (venta interestatal).
type IGST struct {
	Rate decimal.Decimal
}

// CGSTSGST impuesto central + estatal (venta intraestatal).
type CGSTSGST struct {
	CGSTRate decimal.Decimal
	SGSTRate decimal.Decimal
}

func (IGST) Kind() string     { return TaxModeIGST }
func (CGSTSGST) Kind() string { return TaxModeCGSTSGST }
func (IGST) taxMode()         {}
func (CGSTSGST) taxMode()     {}

// DefaultTaxMode CGST 9% + SGST 9%.
func DefaultTaxMode() TaxMode {
	return CGSTSGST{CGSTRate: DefaultCGSTRate, SGSTRate: DefaultSGSTRate}
}

// ParseTaxMode construye el modo a partir del identificador y tarifas opcionales.
// Tarifas nulas usan las de defaults; un identificador desconocido equivale a CGST_SGST.
func ParseTaxMode(kind string, igst, cgst, sgst *decimal.Decimal, defaults Rates) TaxMode {
	pick := func(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
		if v == nil {
			return def
		}
		return *v
	}
	if kind == TaxModeIGST {
		return IGST{Rate: pick(igst, defaults.IGST)}
	}
	return CGSTSGST{CGSTRate: pick(cgst, defaults.CGST), SGSTRate: pick(sgst, defaults.SGST)}
}

// Rates tarifas configurables por despliegue.
type Rates struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// DefaultRates 9/9/18.
func DefaultRates() Rates {
	return Rates{CGST: DefaultCGSTRate, SGST: DefaultSGSTRate, IGST: DefaultIGSTRate}
}
