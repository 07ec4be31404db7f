package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/empresa"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "backoffice-test-secret"
	testUserID    = "6b1f3c1e-0000-4000-8000-000000000001"
	testCompanyID = "6b1f3c1e-0000-4000-8000-0000000000aa"
	testIssuer    = "backoffice-api-test"
)

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, role, testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

// modulosEmpresa guarda los módulos activos y registra cada consulta.
type modulosEmpresa struct {
	activos   map[string]bool
	consultas []string
	empresas  []string
}

func (m *modulosEmpresa) HasActiveModule(_ context.Context, companyID, moduleName string) (bool, error) {
	m.consultas = append(m.consultas, moduleName)
	m.empresas = append(m.empresas, companyID)
	return m.activos[moduleName], nil
}

// backofficeApp monta el router real. Los casos de uso quedan en nil: cada caso se
// detiene en un middleware antes de llegar al handler, salvo los cálculos en vivo.
func backofficeApp(mods *modulosEmpresa) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ModuleService: empresa.NewModuleService(mods),
		JWTSecret:     testJWTSecret,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, auth string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body dto.ErrorResponse
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles y módulos por grupo de rutas
// ──────────────────────────────────────────────────────────────────────────────

// Con todos los módulos inactivos, MODULE_DISABLED prueba que el rol pasó y que se
// consultó el módulo del grupo; FORBIDDEN prueba que el rol cortó antes.
func TestRouter_RolesYModulosPorGrupo(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		method string
		path   string
		code   string
		modulo string
	}{
		{"contador en facturas", entity.RoleContador, http.MethodGet, "/api/facturas", "MODULE_DISABLED", empresa.ModuloCuentasPorPagar},
		{"contador registra pago", entity.RoleContador, http.MethodPost, "/api/facturas/f-1/pago", "MODULE_DISABLED", empresa.ModuloCuentasPorPagar},
		{"admin en notas de débito", entity.RoleAdmin, http.MethodGet, "/api/notas-debito/nd-1/pdf", "MODULE_DISABLED", empresa.ModuloCuentasPorPagar},
		{"cajero fuera de cuentas por pagar", entity.RoleCajero, http.MethodGet, "/api/facturas", "FORBIDDEN", ""},
		{"vendedor fuera de notas de débito", entity.RoleVendedor, http.MethodGet, "/api/notas-debito/nd-1", "FORBIDDEN", ""},
		{"vendedor en créditos", entity.RoleVendedor, http.MethodPost, "/api/creditos/c-1/abonos", "MODULE_DISABLED", empresa.ModuloCreditos},
		{"cajero fuera de créditos", entity.RoleCajero, http.MethodGet, "/api/creditos", "FORBIDDEN", ""},
		{"cajero abre caja", entity.RoleCajero, http.MethodPost, "/api/caja/sesiones", "MODULE_DISABLED", empresa.ModuloCaja},
		{"contador fuera de caja", entity.RoleContador, http.MethodPost, "/api/caja/sesiones/s-1/cierre", "FORBIDDEN", ""},
		{"vendedor consulta precios", entity.RoleVendedor, http.MethodGet, "/api/precios?origen=todos", "MODULE_DISABLED", empresa.ModuloPrecios},
		{"cajero fuera del resumen", entity.RoleCajero, http.MethodGet, "/api/resumen", "FORBIDDEN", ""},
		{"contador no registra usuarios", entity.RoleContador, http.MethodPost, "/api/auth/register", "FORBIDDEN", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods := &modulosEmpresa{activos: map[string]bool{}}
			resp, body := send(t, backofficeApp(mods), tt.method, tt.path, tokenForRole(t, tt.role))

			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			if tt.modulo == "" {
				assert.Empty(t, mods.consultas, "el rol se valida antes que el módulo")
				return
			}
			assert.Equal(t, []string{tt.modulo}, mods.consultas)
			assert.Equal(t, []string{testCompanyID}, mods.empresas)
		})
	}
}

func TestRouter_CalculosParaCualquierRol(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleContador, entity.RoleCajero, entity.RoleVendedor} {
		mods := &modulosEmpresa{}
		resp, _ := send(t, backofficeApp(mods), http.MethodPost, "/api/calculos/documento", tokenForRole(t, role))
		assert.Equal(t, http.StatusOK, resp.StatusCode, role)
		assert.Empty(t, mods.consultas)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Token
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_TokenRechazadoSinConsultarModulos(t *testing.T) {
	vencido, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, entity.RoleContador, testIssuer, -1)
	require.NoError(t, err)
	otraFirma, err := pkgjwt.Generate("otra-clave", testUserID, testCompanyID, entity.RoleContador, testIssuer, 60)
	require.NoError(t, err)
	sinRol, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "", testIssuer, 60)
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"esquema Basic", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"vencido", "Bearer " + vencido, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"firmado con otra clave", "Bearer " + otraFirma, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"sin rol", "Bearer " + sinRol, http.StatusUnauthorized, "MISSING_ROLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods := &modulosEmpresa{activos: map[string]bool{empresa.ModuloCuentasPorPagar: true}}
			resp, body := send(t, backofficeApp(mods), http.MethodGet, "/api/facturas", tt.auth)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			assert.Empty(t, mods.consultas)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena completa hasta el handler
// ──────────────────────────────────────────────────────────────────────────────

func TestCadenaCuentasPorPagar_ModuloActivoLlegaAlHandler(t *testing.T) {
	mods := &modulosEmpresa{activos: map[string]bool{empresa.ModuloCuentasPorPagar: true}}
	app := fiber.New()
	app.Get("/facturas",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin, entity.RoleContador),
		apphttp.RequireModule(empresa.ModuloCuentasPorPagar, empresa.NewModuleService(mods)),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":    apphttp.GetUserID(c),
				"company_id": apphttp.GetCompanyID(c),
				"role":       apphttp.GetRole(c),
			})
		},
	)

	resp, _ := send(t, app, http.MethodGet, "/facturas", tokenForRole(t, entity.RoleContador))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, entity.RoleContador, body["role"])
	assert.Equal(t, []string{empresa.ModuloCuentasPorPagar}, mods.consultas)
}
