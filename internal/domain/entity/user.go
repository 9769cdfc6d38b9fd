package entity

import "time"

// Roles válidos para User. Cualquier rol o tipo que contenga "admin" es administrador.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del dashboard con su acceso por sistema y por página.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string   // admin, user, o texto libre heredado (ej. "Plant Admin")
	UserType     string   // campo alterno heredado; también puede marcar admin
	SystemAccess []string // o2d, batchcode, lead-to-order (normalizados)
	PageAccess   []string // rutas o nombres de página, en orden
	Status       string   // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
