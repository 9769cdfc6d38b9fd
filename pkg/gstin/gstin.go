// Package gstin valida el GSTIN (número de registro GST de India): formato de 15
// caracteres y carácter de control módulo 36.
package gstin

import (
	"fmt"
	"strings"
)

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Length largo fijo de un GSTIN.
const Length = 15

// Normalize recorta y pasa a mayúsculas.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate comprueba formato y carácter de control. s debe venir normalizado.
// Estructura: 2 dígitos de estado, PAN (5 letras, 4 dígitos, 1 letra), entidad, 'Z', control.
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("gstin: debe tener %d caracteres, tiene %d", Length, len(s))
	}
	for i := 0; i < Length; i++ {
		if strings.IndexByte(charset, s[i]) < 0 {
			return fmt.Errorf("gstin: carácter inválido %q en la posición %d", s[i], i+1)
		}
	}
	if !isDigit(s[0]) || !isDigit(s[1]) || s[:2] == "00" {
		return fmt.Errorf("gstin: código de estado inválido %q", s[:2])
	}
	for i := 2; i < 7; i++ {
		if !isLetter(s[i]) {
			return fmt.Errorf("gstin: PAN inválido en la posición %d", i+1)
		}
	}
	for i := 7; i < 11; i++ {
		if !isDigit(s[i]) {
			return fmt.Errorf("gstin: PAN inválido en la posición %d", i+1)
		}
	}
	if !isLetter(s[11]) {
		return fmt.Errorf("gstin: PAN inválido en la posición 12")
	}
	if s[13] != 'Z' {
		return fmt.Errorf("gstin: la posición 14 debe ser Z")
	}
	expected := CheckChar(s)
	if s[14] != expected {
		return fmt.Errorf("gstin: carácter de control inválido: esperado %c, recibido %c", expected, s[14])
	}
	return nil
}

// Valid atajo booleano de Validate sobre la entrada normalizada.
func Valid(s string) bool {
	return Validate(Normalize(s)) == nil
}

// CheckChar calcula el carácter de control sobre los 14 primeros caracteres.
// Los factores alternan 1 y 2; cada producto aporta cociente + resto en base 36.
func CheckChar(s string) byte {
	var sum int
	for i := 0; i < 14 && i < len(s); i++ {
		v := strings.IndexByte(charset, s[i])
		if v < 0 {
			v = 0
		}
		p := v * (1 + i%2)
		sum += p/36 + p%36
	}
	return charset[(36-sum%36)%36]
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
