package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/caja"
	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/application/empresa"
	"github.com/jhoicas/Backoffice-api/internal/application/precios"
	"github.com/jhoicas/Backoffice-api/internal/application/resumen"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FacturaUC     *cuentasporpagar.FacturaUseCase
	PagoUC        *cuentasporpagar.PagoUseCase
	ExportUC      *cuentasporpagar.ExportUseCase
	CreditoUC     *creditos.UseCase
	CajaUC        *caja.UseCase
	PrecioUC      *precios.UseCase
	ResumenUC     *resumen.UseCase
	CompanyUC     *empresa.CompanyUseCase
	ModuleService *empresa.ModuleService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Resumen y empresa
	resumenHandler := NewResumenHandler(deps.ResumenUC, deps.CompanyUC)
	protected.Get("/resumen", RequireRole(entity.RoleAdmin, entity.RoleContador), resumenHandler.GetResumen)
	protected.Get("/empresa", resumenHandler.GetEmpresa)

	// Cálculos en vivo (cualquier usuario autenticado)
	calculosHandler := NewCalculosHandler()
	protected.Post("/calculos/documento", calculosHandler.Documento)
	protected.Post("/calculos/nota-debito", calculosHandler.NotaDebito)

	// Cuentas por pagar
	cxp := []fiber.Handler{
		RequireRole(entity.RoleAdmin, entity.RoleContador),
		RequireModule(empresa.ModuloCuentasPorPagar, deps.ModuleService),
	}
	facturas := protected.Group("/facturas", cxp...)
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.PagoUC, deps.ExportUC)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/export", facturaHandler.Export)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Post("/:id/notas-credito", facturaHandler.CreateNotaCredito)
	facturas.Get("/:id/nota-debito/preview", facturaHandler.PreviewNotaDebito)
	facturas.Post("/:id/pago", facturaHandler.RegistrarPago)

	notasDebito := protected.Group("/notas-debito", cxp...)
	ndHandler := NewNotaDebitoHandler(deps.PagoUC, deps.ExportUC)
	notasDebito.Get("/:id", ndHandler.GetByID)
	notasDebito.Patch("/:id", ndHandler.Update)
	notasDebito.Get("/:id/pdf", ndHandler.PDF)

	// Créditos
	creditosGroup := protected.Group("/creditos",
		RequireRole(entity.RoleAdmin, entity.RoleContador, entity.RoleVendedor),
		RequireModule(empresa.ModuloCreditos, deps.ModuleService),
	)
	creditoHandler := NewCreditoHandler(deps.CreditoUC)
	creditosGroup.Post("/", creditoHandler.Create)
	creditosGroup.Get("/", creditoHandler.List)
	creditosGroup.Get("/export", creditoHandler.Export)
	creditosGroup.Get("/:id", creditoHandler.GetByID)
	creditosGroup.Post("/:id/abonos", creditoHandler.RegistrarAbono)

	// Caja
	cajaGroup := protected.Group("/caja",
		RequireRole(entity.RoleAdmin, entity.RoleCajero),
		RequireModule(empresa.ModuloCaja, deps.ModuleService),
	)
	cajaHandler := NewCajaHandler(deps.CajaUC)
	cajaGroup.Post("/sesiones", cajaHandler.Abrir)
	cajaGroup.Get("/sesiones/:id", cajaHandler.GetByID)
	cajaGroup.Post("/sesiones/:id/movimientos", cajaHandler.RegistrarMovimiento)
	cajaGroup.Post("/sesiones/:id/cierre", cajaHandler.Cerrar)

	// Precios (todos los roles)
	preciosGroup := protected.Group("/precios", RequireModule(empresa.ModuloPrecios, deps.ModuleService))
	precioHandler := NewPrecioHandler(deps.PrecioUC)
	preciosGroup.Get("/", precioHandler.Buscar)
}
