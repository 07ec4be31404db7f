package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// NotaDebitoHandler consulta, edición y PDF de notas de débito (protegido).
type NotaDebitoHandler struct {
	pagos  *cuentasporpagar.PagoUseCase
	export *cuentasporpagar.ExportUseCase
}

// NewNotaDebitoHandler construye el handler.
func NewNotaDebitoHandler(pagos *cuentasporpagar.PagoUseCase, export *cuentasporpagar.ExportUseCase) *NotaDebitoHandler {
	return &NotaDebitoHandler{pagos: pagos, export: export}
}

// GetByID godoc
// @Summary      Obtener nota de débito
// @Tags         cuentas-por-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la nota de débito"
// @Success      200  {object}  dto.NotaDebitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas-debito/{id} [get]
func (h *NotaDebitoHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.pagos.GetNotaDebito(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar fecha o tasa de pago; una tasa nueva recalcula todos los montos
// @Tags         cuentas-por-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "ID de la nota de débito"
// @Param        body  body  dto.UpdateNotaDebitoRequest  true  "fecha y/o tasa_cambio_pago"
// @Success      200   {object}  dto.NotaDebitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/notas-debito/{id} [patch]
func (h *NotaDebitoHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateNotaDebitoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.pagos.UpdateNotaDebito(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la nota de débito en PDF
// @Tags         cuentas-por-pagar
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la nota de débito"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas-debito/{id}/pdf [get]
func (h *NotaDebitoHandler) PDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	data, err := h.export.NotaDebitoPDF(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="nota-debito-`+id+`.pdf"`)
	return c.Send(data)
}
