package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// QuotationHandler cotizaciones del flujo lead-to-order (protegido).
type QuotationHandler struct {
	uc *appquote.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *appquote.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Preview godoc
// @Summary      Vista previa de totales
// @Description  No valida ni persiste: los importes se coercionan (vacío o texto = 0).
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewQuotationRequest  true  "Líneas, descuentos e impuesto"
// @Success      200   {object}  dto.PreviewQuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotations/preview [post]
func (h *QuotationHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Preview(in))
}

// Create godoc
// @Summary      Crear cotización (DRAFT)
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveQuotationRequest  true  "Cabecera y al menos una línea"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SaveQuotationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        mine    query  bool  false  "Solo las creadas por el usuario"
// @Param        limit   query  int   false  "Límite (default 20)"
// @Param        offset  query  int   false  "Offset"
// @Success      200     {object}  dto.QuotationListResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return respondError(c, err)
	}
	createdBy := ""
	if c.QueryBool("mine") {
		createdBy = GetUserID(c)
	}
	out, err := h.uc.List(c.Context(), createdBy, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar cotización
// @Description  Reemplaza cabecera y líneas, recalcula totales y vuelve a DRAFT.
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cotización"
// @Param        body  body  dto.SaveQuotationRequest  true  "Cabecera y líneas"
// @Success      200   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [put]
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveQuotationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea
// @Description  Renumera las líneas restantes. La última línea no se puede quitar (409).
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID de la cotización"
// @Param        position  path  int     true  "Posición de la línea (desde 1)"
// @Success      200       {object}  dto.QuotationResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/items/{position} [delete]
func (h *QuotationHandler) RemoveItem(c *fiber.Ctx) error {
	position, err := strconv.Atoi(c.Params("position"))
	if err != nil || position < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "position debe ser un entero >= 1"})
	}
	out, err := h.uc.RemoveItem(c.Context(), c.Params("id"), position)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Generar PDF
// @Description  Recalcula los totales desde las líneas guardadas y pasa la cotización a GENERATED.
// @Tags         quotations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/pdf [post]
func (h *QuotationHandler) GeneratePDF(c *fiber.Ctx) error {
	data, name, err := h.uc.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, data, name, mimePDF)
}

// Save godoc
// @Summary      Guardar PDF en el almacenamiento
// @Description  Sube el PDF con el número de cotización como nombre y pasa a PERSISTED.
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.SavedDocumentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/save [post]
func (h *QuotationHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar a Excel
// @Tags         quotations
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/xlsx [get]
func (h *QuotationHandler) ExportXLSX(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportXLSX(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, data, name, mimeXLSX)
}

func sendFile(c *fiber.Ctx, data []byte, name, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
