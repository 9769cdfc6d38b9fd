package quotation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Límites de la coerción. Más allá de ellos la entrada no es un importe de negocio
// y redondearla costaría memoria proporcional al exponente.
const (
	maxInputLen   = 40
	maxIntDigits  = 15 // |d| < 10^15
	minFracDigits = -12
)

// Coerce convierte la entrada cruda del formulario a decimal; lo no numérico o vacío vale 0.
// Así el cálculo queda definido para cualquier pulsación de teclado.
func Coerce(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" || len(raw) > maxInputLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return bounded(d)
}

// CoerceAny igual que Coerce para valores ya decodificados de JSON (número, cadena o nulo).
func CoerceAny(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return bounded(x)
	case float64:
		return bounded(decimal.NewFromFloat(x))
	case float32:
		return bounded(decimal.NewFromFloat32(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case string:
		return Coerce(x)
	case interface{ String() string }:
		return Coerce(x.String())
	default:
		return decimal.Zero
	}
}

// bounded descarta magnitudes fuera de rango mirando solo dígitos y exponente,
// sin reescalar el valor.
func bounded(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	exp := d.Exponent()
	if exp > maxIntDigits || exp < minFracDigits-maxInputLen {
		return decimal.Zero
	}
	if mag := d.NumDigits() + int(exp); mag > maxIntDigits || mag < minFracDigits {
		return decimal.Zero
	}
	return d
}
