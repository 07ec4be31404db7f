// @title                       Backoffice API
// @version                     1.0
// @description                 Cuentas por pagar con diferencial cambiario, créditos, caja y listas de precios.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/docs"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/caja"
	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/empresa"
	"github.com/jhoicas/Backoffice-api/internal/application/precios"
	"github.com/jhoicas/Backoffice-api/internal/application/resumen"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/pos"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Backoffice-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if applied, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	} else if len(applied) > 0 {
		log.Info().Strs("migraciones", applied).Msg("esquema actualizado")
	}

	// Bases POS: un pool por origen; si no responden se arranca sin ese origen.
	posPrincipal := openPOS(ctx, log, "principal", cfg.POS.PrincipalURL)
	posSucursal := openPOS(ctx, log, "sucursal", cfg.POS.SucursalURL)
	for _, p := range []*pgxpool.Pool{posPrincipal, posSucursal} {
		if p != nil {
			defer p.Close()
		}
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	notaCreditoRepo := postgres.NewNotaCreditoRepository(pool)
	notaDebitoRepo := postgres.NewNotaDebitoRepository(pool)
	creditoRepo := postgres.NewCreditoRepository(pool)
	cajaRepo := postgres.NewCajaRepository(pool)
	resumenRepo := postgres.NewResumenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	xlsxGenerator := infraxlsx.NewGenerator()
	pdfGenerator := infrapdf.NewNotaDebitoPDFGenerator()
	catalog := pos.NewCatalog(posPrincipal, posSucursal, time.Duration(cfg.POS.QueryTimeoutSeconds)*time.Second)

	facturaUC := cuentasporpagar.NewFacturaUseCase(facturaRepo, notaCreditoRepo, notaDebitoRepo, txRunner, log)
	pagoUC := cuentasporpagar.NewPagoUseCase(facturaRepo, notaCreditoRepo, notaDebitoRepo, txRunner, log)
	exportUC := cuentasporpagar.NewExportUseCase(facturaUC, facturaRepo, companyRepo, xlsxGenerator, pdfGenerator)
	creditoUC := creditos.NewUseCase(creditoRepo, txRunner, xlsxGenerator, log)
	cajaUC := caja.NewUseCase(cajaRepo, caja.Umbrales{
		Advertencia: cfg.Caja.UmbralAdvertencia,
		Critico:     cfg.Caja.UmbralCritico,
	}, log)
	precioUC := precios.NewUseCase(catalog, log)
	resumenUC := resumen.NewUseCase(resumenRepo)
	moduleSvc := empresa.NewModuleService(companyRepo)
	companyUC := empresa.NewCompanyUseCase(companyRepo, moduleSvc)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	httpLog := log.WithComponent("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				httpLog.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"pos": fiber.Map{
				"principal": catalog.Configurado("principal"),
				"sucursal":  catalog.Configurado("sucursal"),
			},
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		FacturaUC:     facturaUC,
		PagoUC:        pagoUC,
		ExportUC:      exportUC,
		CreditoUC:     creditoUC,
		CajaUC:        cajaUC,
		PrecioUC:      precioUC,
		ResumenUC:     resumenUC,
		CompanyUC:     companyUC,
		ModuleService: moduleSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openPOS abre el pool de un POS externo. DSN vacío o fallo de conexión devuelven nil.
func openPOS(ctx context.Context, log *logger.Logger, origen, dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Warn().Str("origen", origen).Msg("POS sin configurar")
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	p, err := postgres.NewPoolFromDSN(ctx, dsn, postgres.POSPoolOptions)
	if err != nil {
		log.Warn().Err(err).Str("origen", origen).Msg("POS no disponible al arrancar")
		return nil
	}
	return p
}
