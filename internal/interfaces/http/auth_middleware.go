package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
	"github.com/jhoicas/o2d-pipeline-api/pkg/jwt"
)

// Locals keys que AuthMiddleware deja en el contexto de Fiber.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalUserType = "user_type"
	LocalGrant    = "grant"
)

// AuthMiddleware valida el Bearer Token JWT y carga en c.Locals el usuario, su rol y su acceso.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalUserType, claims.UserType)
		c.Locals(LocalGrant, domainaccess.NewGrant(claims.SystemAccess, claims.PageAccess, claims.Role, claims.UserType))
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados (sin distinguir mayúsculas).
// Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está en la lista.
func RequireRole(roles ...string) fiber.Handler {
	return roleGuard(func(c *fiber.Ctx) bool {
		role := GetRole(c)
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return true
			}
		}
		return false
	}, "rol sin permiso para esta operación")
}

// RequireAdmin deja pasar a quien tenga "admin" en el rol o en el tipo de usuario;
// por lo demás responde igual que RequireRole.
func RequireAdmin() fiber.Handler {
	return roleGuard(func(c *fiber.Ctx) bool {
		return GetGrant(c).IsAdmin()
	}, "se requiere un administrador")
}

func roleGuard(allow func(*fiber.Ctx) bool, forbidden string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if allow(c) {
			return c.Next()
		}
		if GetRole(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: forbidden})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetGrant devuelve el acceso que trae el token; nil sin autenticación.
func GetGrant(c *fiber.Ctx) *domainaccess.Grant {
	g, _ := c.Locals(LocalGrant).(*domainaccess.Grant)
	return g
}
