// Package inr formatea importes en rupias con el sistema de agrupación indio
// (₹1,23,45,678.90) y los expresa en palabras para los documentos impresos.
package inr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format devuelve el importe con símbolo ₹, agrupación india y exactamente 2 decimales.
func Format(amount decimal.Decimal) string {
	s := Group(amount)
	if strings.HasPrefix(s, "-") {
		return "-₹" + s[1:]
	}
	return "₹" + s
}

// Group igual que Format pero sin símbolo (útil para columnas de tablas).
func Group(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := amount.Abs().StringFixed(2)
	intPart, decPart, _ := strings.Cut(raw, ".")
	out := applyIndianGrouping(intPart) + "." + decPart
	if negative && out != "0.00" {
		return "-" + out
	}
	return out
}

// applyIndianGrouping: las 3 últimas cifras juntas y luego grupos de 2.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

// Words expresa el importe (redondeado a la rupia) en palabras en inglés indio.
// Ej: 913183 → "Nine Lakh Thirteen Thousand One Hundred and Eighty Three Rupees Only".
func Words(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "Minus " + Words(amount.Abs())
	}
	rupees := amount.Round(0).IntPart()
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	return toWords(rupees) + " Rupees Only"
}

func toWords(n int64) string {
	var parts []string
	scales := []struct {
		value int64
		name  string
	}{
		{10000000, "Crore"},
		{100000, "Lakh"},
		{1000, "Thousand"},
	}
	for _, sc := range scales {
		if n >= sc.value {
			q := n / sc.value
			if q >= 100 {
				parts = append(parts, toWords(q)+" "+sc.name)
			} else {
				parts = append(parts, under100(q)+" "+sc.name)
			}
			n %= sc.value
		}
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+under100(n))
		} else {
			parts = append(parts, under100(n))
		}
	}
	return strings.Join(parts, " ")
}

func under100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	w := tens[n/10]
	if n%10 != 0 {
		w += " " + ones[n%10]
	}
	return w
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
