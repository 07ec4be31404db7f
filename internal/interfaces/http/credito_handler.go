package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CreditoHandler ventas a crédito y abonos (protegido).
type CreditoHandler struct {
	uc *creditos.UseCase
}

// NewCreditoHandler construye el handler.
func NewCreditoHandler(uc *creditos.UseCase) *CreditoHandler {
	return &CreditoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta a crédito
// @Tags         creditos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCreditoRequest  true  "crédito"
// @Success      201   {object}  dto.CreditoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/creditos [post]
func (h *CreditoHandler) Create(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateCreditoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCredito(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar créditos
// @Tags         creditos
// @Produce      json
// @Security     BearerAuth
// @Param        cliente   query  string  false  "nombre o RIF del cliente"
// @Param        estado    query  string  false  "pendiente | pagado"
// @Param        vencidos  query  bool    false  "solo vencidos"
// @Param        limit     query  int     false  "1..100 (20)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {object}  dto.CreditoListResponse
// @Router       /api/creditos [get]
func (h *CreditoHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	out, err := h.uc.ListCreditos(c.Context(), companyID, creditoFiltro(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de crédito con abonos
// @Tags         creditos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del crédito"
// @Success      200  {object}  dto.CreditoDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/creditos/{id} [get]
func (h *CreditoHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetCredito(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarAbono godoc
// @Summary      Registrar abono a un crédito
// @Tags         creditos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del crédito"
// @Param        body  body  dto.RegistrarAbonoRequest  true  "monto, método, referencia"
// @Success      201   {object}  dto.CreditoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/creditos/{id}/abonos [post]
func (h *CreditoHandler) RegistrarAbono(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.RegistrarAbonoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegistrarAbono(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Export godoc
// @Summary      Exportar créditos a XLSX
// @Tags         creditos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        cliente   query  string  false  "nombre o RIF del cliente"
// @Param        estado    query  string  false  "pendiente | pagado"
// @Param        vencidos  query  bool    false  "solo vencidos"
// @Success      200  {file}  file
// @Router       /api/creditos/export [get]
func (h *CreditoHandler) Export(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	data, err := h.uc.ExportCreditosXLSX(c.Context(), companyID, creditoFiltro(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="creditos.xlsx"`)
	return c.Send(data)
}

func creditoFiltro(c *fiber.Ctx) entity.CreditoFiltro {
	return entity.CreditoFiltro{
		Cliente:  c.Query("cliente"),
		Estado:   c.Query("estado"),
		Vencidos: c.QueryBool("vencidos"),
	}
}
