package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/precios"
)

// PrecioHandler listas de precios de los POS (protegido).
type PrecioHandler struct {
	uc *precios.UseCase
}

// NewPrecioHandler construye el handler.
func NewPrecioHandler(uc *precios.UseCase) *PrecioHandler {
	return &PrecioHandler{uc: uc}
}

// Buscar godoc
// @Summary      Buscar precios por código o descripción
// @Tags         precios
// @Produce      json
// @Security     BearerAuth
// @Param        origen  query  string  false  "principal | sucursal | todos (todos)"
// @Param        q       query  string  false  "código o descripción"
// @Param        tasa    query  string  false  "tasa Bs/USD; si se envía se agrega precio_bs"
// @Param        limit   query  int     false  "1..100 (20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.PrecioListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/precios [get]
func (h *PrecioHandler) Buscar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "VALIDATION", "paginación inválida")
	}
	tasa := decimal.Zero
	if raw := strings.TrimSpace(c.Query("tasa")); raw != "" {
		t, err := decimal.NewFromString(raw)
		if err != nil {
			return badRequest(c, "VALIDATION", "tasa inválida")
		}
		tasa = t
	}
	out, err := h.uc.BuscarPrecios(c.Context(), c.Query("origen"), c.Query("q"), page, tasa)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
