package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// Códigos de error del control de módulos contratados.
const (
	// CodeModuleDisabled 403: la empresa no tiene el módulo o ya venció.
	CodeModuleDisabled = "MODULE_DISABLED"
	// CodeModuleCheckFailed 503: no se pudo leer company_modules.
	CodeModuleCheckFailed = "MODULE_CHECK_FAILED"
)

// moduleChecker consulta company_modules; lo implementa *empresa.ModuleService.
// Responde por cuentas_por_pagar, creditos, caja y precios.
type moduleChecker interface {
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
}

// RequireModule corta la petición si la empresa del token no tiene activo el módulo del
// grupo de rutas. Va después de AuthMiddleware y RequireRole: un rol no autorizado
// nunca llega a consultar la base.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return unauthorized(c)
		}

		active, err := checker.HasActiveModule(c.Context(), companyID, moduleName)
		if err != nil {
			log.Error().Err(err).Str("company_id", companyID).Str("modulo", moduleName).Msg("consulta de módulo falló")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    CodeModuleCheckFailed,
				Message: "no se pudo verificar el módulo " + moduleName,
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    CodeModuleDisabled,
				Message: "la empresa no tiene activo el módulo " + moduleName,
			})
		}
		return c.Next()
	}
}
