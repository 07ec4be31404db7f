package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/calculos"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// CalculosHandler recálculo en vivo para los formularios; no persiste nada.
type CalculosHandler struct{}

// NewCalculosHandler construye el handler.
func NewCalculosHandler() *CalculosHandler { return &CalculosHandler{} }

// Documento godoc
// @Summary      Recalcular campos derivados de una factura o nota de crédito
// @Description  Acepta números, cadenas o null; un valor no numérico se toma como 0.
// @Tags         calculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecalcularDocumentoRequest  true  "valores del formulario"
// @Success      200   {object}  dto.DocumentoDerivadoResponse
// @Router       /api/calculos/documento [post]
func (h *CalculosHandler) Documento(c *fiber.Ctx) error {
	var in dto.RecalcularDocumentoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	return c.JSON(calculos.RecalcularDocumento(in))
}

// NotaDebito godoc
// @Summary      Simular una nota de débito por diferencial cambiario
// @Tags         calculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SimularNotaDebitoRequest  true  "monto USD, tasas, alícuota, retención, notas de crédito"
// @Success      200   {object}  dto.NotaDebitoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/calculos/nota-debito [post]
func (h *CalculosHandler) NotaDebito(c *fiber.Ctx) error {
	var in dto.SimularNotaDebitoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := calculos.SimularNotaDebito(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
