package access

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grant acceso de un usuario autenticado. Es de solo lectura: se construye una vez
// a partir de la sesión y se consulta en cada navegación.
type Grant struct {
	SystemAccess []string // normalizados con NormalizeSystem
	PageAccess   []string // orden original; rutas ("/...") o nombres de página
	Role         string
	UserType     string
}

// lower crea un Caser por llamada: un cases.Caser no debe compartirse entre goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// NormalizeSystem recorta, pasa a minúsculas y elimina los espacios internos de un
// identificador de sistema. Es la única normalización aplicada en la frontera de ingesta.
func NormalizeSystem(s string) string {
	s = lower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseList separa un campo heredado "a, b ,c" en sus elementos recortados, sin vacíos.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeSystems aplica NormalizeSystem a cada elemento y descarta vacíos y duplicados.
func NormalizeSystems(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		n := NormalizeSystem(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// NormalizePages recorta las entradas de página y descarta las vacías, conservando el orden.
func NormalizePages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewGrant construye un Grant desde listas ya separadas (formato de la API).
func NewGrant(systems, pages []string, role, userType string) *Grant {
	return &Grant{
		SystemAccess: NormalizeSystems(systems),
		PageAccess:   NormalizePages(pages),
		Role:         role,
		UserType:     userType,
	}
}

// ParseGrant construye un Grant desde los campos heredados separados por comas
// (system_access, page_access) que envía el backend de hojas de cálculo.
func ParseGrant(systemAccess, pageAccess, role, userType string) *Grant {
	return NewGrant(ParseList(systemAccess), ParseList(pageAccess), role, userType)
}

// IsAdmin es verdadero si Role o UserType contienen "admin" (sin distinguir mayúsculas).
func (g *Grant) IsAdmin() bool {
	if g == nil {
		return false
	}
	return strings.Contains(lower(g.Role), "admin") ||
		strings.Contains(lower(g.UserType), "admin")
}

// HasSystem informa si el sistema está concedido.
func (g *Grant) HasSystem(name string) bool {
	if g == nil {
		return false
	}
	name = NormalizeSystem(name)
	for _, s := range g.SystemAccess {
		if s == name {
			return true
		}
	}
	return false
}

// hasAnyKnownSystem informa si el grant incluye al menos uno de los sistemas del dashboard.
func (g *Grant) hasAnyKnownSystem() bool {
	for _, s := range g.SystemAccess {
		if IsKnownSystem(s) {
			return true
		}
	}
	return false
}

// SystemAccessString serializa a la codificación heredada separada por comas.
func (g *Grant) SystemAccessString() string {
	if g == nil {
		return ""
	}
	return strings.Join(g.SystemAccess, ",")
}

// PageAccessString serializa a la codificación heredada separada por comas.
func (g *Grant) PageAccessString() string {
	if g == nil {
		return ""
	}
	return strings.Join(g.PageAccess, ",")
}
