package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FacturaHandler cuentas por pagar: facturas, notas de crédito y pago (protegido).
type FacturaHandler struct {
	facturas *cuentasporpagar.FacturaUseCase
	pagos    *cuentasporpagar.PagoUseCase
	export   *cuentasporpagar.ExportUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(facturas *cuentasporpagar.FacturaUseCase, pagos *cuentasporpagar.PagoUseCase, export *cuentasporpagar.ExportUseCase) *FacturaHandler {
	return &FacturaHandler{facturas: facturas, pagos: pagos, export: export}
}

// Create godoc
// @Summary      Registrar factura de proveedor
// @Description  Los campos derivados (sub total, IVA, total, retención, monto USD) se calculan en el servidor.
// @Tags         cuentas-por-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateFacturaRequest  true  "factura"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.facturas.CreateFactura(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas
// @Tags         cuentas-por-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        proveedor  query  string  false  "nombre o RIF del proveedor"
// @Param        numero     query  string  false  "número de factura"
// @Param        estado     query  string  false  "pendiente | pagada"
// @Param        desde      query  string  false  "YYYY-MM-DD"
// @Param        hasta      query  string  false  "YYYY-MM-DD"
// @Param        limit      query  int     false  "1..100 (20)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.FacturaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var (
		filtroIn dto.FacturaFiltroRequest
		page     dto.PageRequest
	)
	if err := c.QueryParser(&filtroIn); err != nil {
		return badRequest(c, "VALIDATION", "parámetros inválidos")
	}
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	filtro, err := cuentasporpagar.ParseFiltro(filtroIn)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.facturas.ListFacturas(c.Context(), companyID, filtro, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de factura con notas de crédito, nota de débito y monto final
// @Tags         cuentas-por-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.facturas.GetFactura(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateNotaCredito godoc
// @Summary      Registrar nota de crédito sobre una factura pendiente
// @Tags         cuentas-por-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                        true  "ID de la factura"
// @Param        body  body  dto.CreateNotaCreditoRequest  true  "nota de crédito"
// @Success      201   {object}  dto.NotaCreditoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/notas-credito [post]
func (h *FacturaHandler) CreateNotaCredito(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateNotaCreditoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.facturas.CreateNotaCredito(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PreviewNotaDebito godoc
// @Summary      Vista previa de la nota de débito (no persiste)
// @Tags         cuentas-por-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "ID de la factura"
// @Param        tasa  query  string  true  "tasa de cambio del pago"
// @Success      200  {object}  dto.NotaDebitoResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/nota-debito/preview [get]
func (h *FacturaHandler) PreviewNotaDebito(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	tasa, err := decimal.NewFromString(strings.TrimSpace(c.Query("tasa")))
	if err != nil {
		return badRequest(c, "VALIDATION", "tasa requerida")
	}
	out, err := h.pagos.PreviewNotaDebito(c.Context(), companyID, c.Params("id"), tasa)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarPago godoc
// @Summary      Registrar pago: genera la nota de débito y marca la factura como pagada
// @Tags         cuentas-por-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.RegistrarPagoRequest  true  "tasa de pago, fecha y número opcionales"
// @Success      201   {object}  dto.PagoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/pago [post]
func (h *FacturaHandler) RegistrarPago(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.pagos.RegistrarPago(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Export godoc
// @Summary      Exportar facturas a XLSX (mismos filtros del listado)
// @Tags         cuentas-por-pagar
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        proveedor  query  string  false  "nombre o RIF del proveedor"
// @Param        estado     query  string  false  "pendiente | pagada"
// @Param        desde      query  string  false  "YYYY-MM-DD"
// @Param        hasta      query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  file
// @Router       /api/facturas/export [get]
func (h *FacturaHandler) Export(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var filtroIn dto.FacturaFiltroRequest
	if err := c.QueryParser(&filtroIn); err != nil {
		return badRequest(c, "VALIDATION", "parámetros inválidos")
	}
	filtro, err := cuentasporpagar.ParseFiltro(filtroIn)
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.export.ExportFacturasXLSX(c.Context(), companyID, filtro)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="facturas.xlsx"`)
	return c.Send(data)
}
