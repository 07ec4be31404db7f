package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/caja"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// CajaHandler sesiones de caja, movimientos y arqueo (protegido).
type CajaHandler struct {
	uc *caja.UseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *caja.UseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Abrir godoc
// @Summary      Abrir sesión de caja en un punto de venta
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AbrirCajaRequest  true  "punto de venta y monto inicial"
// @Success      201   {object}  dto.SesionCajaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones [post]
func (h *CajaHandler) Abrir(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.AbrirCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AbrirCaja(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Sesión de caja con movimientos y arqueo
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SesionCajaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id} [get]
func (h *CajaHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetSesion(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarMovimiento godoc
// @Summary      Registrar ingreso o egreso en una sesión abierta
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID de la sesión"
// @Param        body  body  dto.MovimientoCajaRequest  true  "movimiento"
// @Success      201   {object}  dto.MovimientoCajaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/movimientos [post]
func (h *CajaHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.MovimientoCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegistrarMovimiento(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cerrar godoc
// @Summary      Cerrar la sesión con el monto declarado y calcular el desvío
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID de la sesión"
// @Param        body  body  dto.CerrarCajaRequest  true  "monto declarado"
// @Success      200   {object}  dto.SesionCajaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/cierre [post]
func (h *CajaHandler) Cerrar(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CerrarCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CerrarCaja(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
