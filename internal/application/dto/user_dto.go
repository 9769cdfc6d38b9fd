package dto

import "time"

// RegisterRequest alta de usuario por un administrador.
// system_access y page_access se normalizan al ingresar (minúsculas, sin duplicados).
type RegisterRequest struct {
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=8"`
	Name         string   `json:"name" validate:"omitempty,max=200"`
	Role         string   `json:"role" validate:"omitempty,max=50"`
	UserType     string   `json:"user_type" validate:"omitempty,max=50"`
	SystemAccess []string `json:"system_access" validate:"omitempty,dive,max=50"`
	PageAccess   []string `json:"page_access" validate:"omitempty,dive,max=200"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	UserType     string    `json:"user_type,omitempty"`
	SystemAccess []string  `json:"system_access"`
	PageAccess   []string  `json:"page_access"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT, usuario y la ruta a la que el cliente debe navegar tras el login.
type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"user"`
	DefaultPath string       `json:"default_path"`
}

// UpdateAccessRequest edición del acceso de un usuario. Campos nulos no se tocan;
// una lista vacía (no nula) revoca todo el acceso de ese tipo.
type UpdateAccessRequest struct {
	Role         *string  `json:"role" validate:"omitempty,max=50"`
	UserType     *string  `json:"user_type" validate:"omitempty,max=50"`
	SystemAccess []string `json:"system_access" validate:"omitempty,dive,max=50"`
	PageAccess   []string `json:"page_access" validate:"omitempty,dive,max=200"`
}

// AccessGrantPayload forma heredada del acceso: listas separadas por comas.
type AccessGrantPayload struct {
	SystemAccess string `json:"system_access"`
	PageAccess   string `json:"page_access"`
	Role         string `json:"role"`
	UserType     string `json:"user_type,omitempty"`
}

// UserAccessResponse respuesta de PUT /api/users/:id/access.
type UserAccessResponse struct {
	User   UserResponse       `json:"user"`
	Legacy AccessGrantPayload `json:"legacy"`
}
