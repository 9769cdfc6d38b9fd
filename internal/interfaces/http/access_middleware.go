package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
)

// RequirePage protege un grupo de la API con la misma decisión que el guardia de rutas
// del cliente: solo pasa quien puede abrir la página route. Debe usarse DESPUÉS de AuthMiddleware.
// Evalúa el acceso del token; un cambio de acceso aplica en el siguiente login.
//   - 401 UNAUTHORIZED sin acceso en el contexto.
//   - 403 PAGE_FORBIDDEN si la página no está permitida.
func RequirePage(route string, evaluator *domainaccess.Evaluator) fiber.Handler {
	if evaluator == nil {
		evaluator = domainaccess.Default()
	}
	return func(c *fiber.Ctx) error {
		grant := GetGrant(c)
		if grant == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !evaluator.IsPathAllowed(route, grant) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PAGE_FORBIDDEN",
				Message: "sin acceso a la página " + route,
			})
		}
		return c.Next()
	}
}
