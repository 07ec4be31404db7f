package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/empresa"
	"github.com/jhoicas/Backoffice-api/internal/application/resumen"
)

// ResumenHandler indicadores del backoffice y datos de la empresa.
type ResumenHandler struct {
	resumen *resumen.UseCase
	empresa *empresa.CompanyUseCase
}

// NewResumenHandler construye el handler.
func NewResumenHandler(r *resumen.UseCase, e *empresa.CompanyUseCase) *ResumenHandler {
	return &ResumenHandler{resumen: r, empresa: e}
}

// GetResumen godoc
// @Summary      Resumen: cuentas por pagar, diferencial del mes, créditos y cajas abiertas
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ResumenDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/resumen [get]
func (h *ResumenHandler) GetResumen(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.resumen.GetResumen(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetEmpresa godoc
// @Summary      Empresa del usuario autenticado y módulos activos
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa [get]
func (h *ResumenHandler) GetEmpresa(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.empresa.GetCompany(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
