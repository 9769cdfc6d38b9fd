// Package access decide qué rutas del dashboard puede abrir un usuario y a cuál
// aterriza después del login.
//
// El orden de evaluación de IsPathAllowed es parte del contrato:
//
//	1. sin grant               → denegar
//	2. admin                   → permitir
//	3. coincidencia de página  → permitir (igualdad o descendiente "ruta/")
//	4. exclusividad de páginas → denegar si hay lista de páginas, no hubo
//	                             coincidencia, la ruta no es raíz de sistema
//	                             y no trae ?tab=
//	5. acceso por sistema      → permitir si el sistema de la ruta está concedido
//	6. raíz "/"                → permitir con cualquier sistema o página
//	7. resto                   → denegar
//
// Ninguna función del paquete devuelve error ni entra en pánico: los datos
// ausentes o malformados equivalen a "sin acceso".
package access

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// Request ruta solicitada ya normalizada.
type Request struct {
	Path string // sin query ni barra final; la raíz es "/"
	Tab  string // valor de ?tab= normalizado con NormalizeSystem (vacío si no viene)
}

// ParseRequest normaliza la ruta: quita la query, la barra final y extrae ?tab=.
func ParseRequest(raw string) Request {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	path, query, _ := strings.Cut(raw, "?")
	req := Request{Path: normalizePath(path)}
	if query != "" {
		if values, err := url.ParseQuery(query); err == nil {
			req.Tab = NormalizeSystem(values.Get("tab"))
		}
	}
	return req
}

func normalizePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return RootPath
	}
	return p
}

// Evaluator aplica las reglas de acceso con una tabla de páginas dada.
type Evaluator struct {
	routes map[string]string // nombre plegado → ruta
}

// NewEvaluator construye el evaluador con la tabla estática de páginas.
func NewEvaluator(pages []Page) *Evaluator {
	routes := make(map[string]string, len(pages))
	for _, p := range pages {
		routes[fold(p.Name)] = p.Route
	}
	return &Evaluator{routes: routes}
}

// defaultEvaluator usa DefaultPages.
var defaultEvaluator = NewEvaluator(DefaultPages)

// Default devuelve el evaluador con la tabla de páginas por defecto.
func Default() *Evaluator { return defaultEvaluator }

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ResolvePage convierte una entrada de page_access en ruta. Las rutas ("/...") se usan tal cual;
// los nombres se buscan sin distinguir mayúsculas; lo no reconocido pasa literal.
func (e *Evaluator) ResolvePage(entry string) string {
	entry = strings.TrimSpace(entry)
	if strings.HasPrefix(entry, "/") {
		return entry
	}
	if route, ok := e.routes[fold(entry)]; ok {
		return route
	}
	return entry
}

// ResolvePages resuelve todas las entradas conservando el orden original.
func (e *Evaluator) ResolvePages(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if r := e.ResolvePage(entry); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// SystemFor determina el sistema al que pertenece la solicitud: ?tab= manda; si no,
// el prefijo de la ruta. La raíz sin tab es el inicio por defecto de o2d.
func SystemFor(req Request) string {
	if req.Tab != "" {
		if IsKnownSystem(req.Tab) {
			return req.Tab
		}
		return ""
	}
	if req.Path == RootPath {
		return SystemO2D
	}
	for _, s := range systemPriority {
		prefix := "/" + s
		if req.Path == prefix || strings.HasPrefix(req.Path, prefix+"/") {
			return s
		}
	}
	return ""
}

// IsPathAllowed decide si el grant puede abrir path.
func (e *Evaluator) IsPathAllowed(path string, g *Grant) bool {
	if g == nil {
		return false
	}
	if g.IsAdmin() {
		return true
	}

	pages := e.ResolvePages(g.PageAccess)
	req := ParseRequest(path)

	for _, route := range pages {
		r := normalizePath(route)
		if req.Path == r || strings.HasPrefix(req.Path, r+"/") {
			return true
		}
	}

	// Una lista explícita de páginas restringe al usuario a esas páginas; el acceso
	// por sistema solo sigue valiendo en las raíces de sistema y en las vistas ?tab=.
	if len(pages) > 0 && !systemRoots[req.Path] && req.Tab == "" {
		return false
	}

	if system := SystemFor(req); system != "" && g.HasSystem(system) {
		return true
	}

	if req.Path == RootPath && (g.hasAnyKnownSystem() || len(pages) > 0) {
		return true
	}
	return false
}

// DefaultAllowedPath ruta de aterrizaje tras el login. Nunca falla.
func (e *Evaluator) DefaultAllowedPath(g *Grant) string {
	if g == nil {
		return LoginPath
	}
	if g.IsAdmin() {
		return RootPath
	}

	for _, route := range e.ResolvePages(g.PageAccess) {
		// Un nombre no reconocido no es un destino navegable.
		if !strings.HasPrefix(route, "/") || normalizePath(route) == RootPath {
			continue
		}
		return route
	}

	for _, s := range systemPriority {
		if g.HasSystem(s) {
			return RootPath + "?tab=" + s
		}
	}

	for _, p := range g.PageAccess {
		if p == RootPath || fold(p) == fold("Dashboard") {
			return RootPath
		}
	}
	return RootPath
}

// IsPathAllowed evalúa con la tabla de páginas por defecto.
func IsPathAllowed(path string, g *Grant) bool {
	return defaultEvaluator.IsPathAllowed(path, g)
}

// DefaultAllowedPath evalúa con la tabla de páginas por defecto.
func DefaultAllowedPath(g *Grant) string {
	return defaultEvaluator.DefaultAllowedPath(g)
}
