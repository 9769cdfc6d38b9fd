package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
)

// AccessHandler guardia de rutas del cliente y administración del acceso de usuarios.
type AccessHandler struct {
	uc *access.AccessUseCase
}

// NewAccessHandler construye el handler.
func NewAccessHandler(uc *access.AccessUseCase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

// Check godoc
// @Summary      Decidir si el usuario puede abrir una ruta
// @Description  Usa el acceso vigente del usuario (no el del token). Si no puede, default_path indica a dónde redirigir.
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Param        path  query  string  true  "Ruta del cliente, ej. /lead-to-order/quotation o /?tab=o2d"
// @Success      200   {object}  dto.AccessCheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/check [get]
func (h *AccessHandler) Check(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	out, err := h.uc.Check(c.Context(), GetUserID(c), path)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DefaultPath godoc
// @Summary      Ruta inicial del usuario
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DefaultPathResponse
// @Router       /api/access/default-path [get]
func (h *AccessHandler) DefaultPath(c *fiber.Ctx) error {
	path, err := h.uc.DefaultPath(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DefaultPathResponse{DefaultPath: path})
}

// Pages godoc
// @Summary      Tabla de páginas y sistemas
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PagesResponse
// @Router       /api/access/pages [get]
func (h *AccessHandler) Pages(c *fiber.Ctx) error {
	return c.JSON(h.uc.Pages())
}

// UpdateUserAccess godoc
// @Summary      Editar el acceso de un usuario (admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del usuario"
// @Param        body  body  dto.UpdateAccessRequest  true  "Campos nulos no se modifican"
// @Success      200   {object}  dto.UserAccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/access [put]
func (h *AccessHandler) UpdateUserAccess(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateAccessRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateAccess(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
