package dto

// AccessCheckResponse decisión del guardia de rutas para una ruta del cliente.
type AccessCheckResponse struct {
	Path        string `json:"path"`
	Allowed     bool   `json:"allowed"`
	DefaultPath string `json:"default_path"`
}

// DefaultPathResponse ruta inicial del usuario.
type DefaultPathResponse struct {
	DefaultPath string `json:"default_path"`
}

// PageInfo entrada de la tabla de páginas.
type PageInfo struct {
	Name   string `json:"name"`
	Route  string `json:"route"`
	System string `json:"system,omitempty"`
}

// PagesResponse tabla estática de páginas y sistemas conocidos.
type PagesResponse struct {
	Systems []string   `json:"systems"`
	Pages   []PageInfo `json:"pages"`
}
