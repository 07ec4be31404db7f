// Package caja apertura, movimientos y cierre con arqueo de las cajas de punto de venta.
package caja

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

var cien = decimal.NewFromInt(100)

// Umbrales porcentuales de desvío del arqueo.
type Umbrales struct {
	Advertencia decimal.Decimal
	Critico     decimal.Decimal
}

// Clasificar devuelve normal, advertencia o critico según el porcentaje absoluto de desvío.
func (u Umbrales) Clasificar(pct decimal.Decimal) string {
	pct = pct.Abs()
	switch {
	case pct.GreaterThanOrEqual(u.Critico):
		return entity.DesvioCritico
	case pct.GreaterThanOrEqual(u.Advertencia):
		return entity.DesvioAdvertencia
	default:
		return entity.DesvioNormal
	}
}

// Arqueo resultado de comparar lo declarado contra lo esperado.
type Arqueo struct {
	Esperado      decimal.Decimal
	Desvio        decimal.Decimal
	Porcentaje    decimal.Decimal
	Clasificacion string
}

// CalcularArqueo esperado = inicial + Σ ingresos − Σ egresos (Bs); desvío = declarado − esperado.
// Con esperado cero cualquier diferencia cuenta como 100 %.
func CalcularArqueo(inicial decimal.Decimal, movs []*entity.MovimientoCaja, declarado decimal.Decimal, u Umbrales) Arqueo {
	esperado := inicial
	for _, m := range movs {
		switch m.Tipo {
		case entity.MovimientoIngreso:
			esperado = esperado.Add(m.MontoBs)
		case entity.MovimientoEgreso:
			esperado = esperado.Sub(m.MontoBs)
		}
	}
	desvio := declarado.Sub(esperado)

	var pct decimal.Decimal
	switch {
	case desvio.IsZero():
		pct = decimal.Zero
	case esperado.IsZero():
		pct = cien
	default:
		pct = desvio.Abs().Div(esperado.Abs()).Mul(cien)
	}
	return Arqueo{
		Esperado:      esperado,
		Desvio:        desvio,
		Porcentaje:    pct,
		Clasificacion: u.Clasificar(pct),
	}
}

// UseCase casos de uso de caja.
type UseCase struct {
	repo     repository.CajaRepository
	umbrales Umbrales
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso con los umbrales del arqueo.
func NewUseCase(repo repository.CajaRepository, umbrales Umbrales, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, umbrales: umbrales, log: log.WithComponent("caja"), now: time.Now}
}

// AbrirCaja abre una sesión; solo puede haber una abierta por empresa y punto de venta.
func (uc *UseCase) AbrirCaja(ctx context.Context, companyID, userID string, in dto.AbrirCajaRequest) (*dto.SesionCajaResponse, error) {
	if in.PuntoDeVenta <= 0 {
		return nil, fmt.Errorf("%w: punto de venta requerido", domain.ErrInvalidInput)
	}
	if in.MontoInicial.IsNegative() {
		return nil, fmt.Errorf("%w: el monto inicial no puede ser negativo", domain.ErrInvalidInput)
	}
	abierta, err := uc.repo.GetAbierta(ctx, companyID, in.PuntoDeVenta)
	if err != nil {
		return nil, err
	}
	if abierta != nil {
		return nil, fmt.Errorf("%w: el punto de venta %d ya tiene una caja abierta", domain.ErrConflict, in.PuntoDeVenta)
	}
	s := &entity.SesionCaja{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		PuntoDeVenta: in.PuntoDeVenta,
		UsuarioID:    userID,
		MontoInicial: in.MontoInicial,
		Estado:       entity.CajaAbierta,
		OpenedAt:     uc.now(),
	}
	if err := uc.repo.CreateSesion(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sesion_id", s.ID).Int("punto_de_venta", s.PuntoDeVenta).Msg("caja abierta")
	out := toSesionResponse(s, nil)
	return &out, nil
}

// RegistrarMovimiento agrega un movimiento inmutable a una sesión abierta.
// Los movimientos en USD guardan su equivalente en Bs (monto * tasa).
func (uc *UseCase) RegistrarMovimiento(ctx context.Context, companyID, sesionID string, in dto.MovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	in.Tipo = strings.ToLower(strings.TrimSpace(in.Tipo))
	in.Metodo = strings.ToLower(strings.TrimSpace(in.Metodo))
	in.Moneda = strings.ToUpper(strings.TrimSpace(in.Moneda))
	if in.Moneda == "" {
		in.Moneda = entity.MonedaVES
	}
	if in.Tipo != entity.MovimientoIngreso && in.Tipo != entity.MovimientoEgreso {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Tipo)
	}
	switch in.Metodo {
	case entity.MetodoEfectivo, entity.MetodoPunto, entity.MetodoTransferencia, entity.MetodoDivisa:
	default:
		return nil, fmt.Errorf("%w: método %q", domain.ErrInvalidInput, in.Metodo)
	}
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("%w: monto debe ser mayor que cero", domain.ErrInvalidInput)
	}

	montoBs := in.Monto
	tasa := decimal.Zero
	switch in.Moneda {
	case entity.MonedaVES:
	case entity.MonedaUSD:
		if !in.TasaCambio.IsPositive() {
			return nil, &diferencial.InvalidRateError{Campo: "tasa_cambio", Valor: in.TasaCambio}
		}
		tasa = in.TasaCambio
		montoBs = in.Monto.Mul(tasa)
	default:
		return nil, fmt.Errorf("%w: moneda %q", domain.ErrInvalidInput, in.Moneda)
	}

	s, err := uc.cargarSesion(ctx, companyID, sesionID)
	if err != nil {
		return nil, err
	}
	if s.Estado != entity.CajaAbierta {
		return nil, domain.ErrCajaCerrada
	}

	m := &entity.MovimientoCaja{
		ID:           uuid.New().String(),
		SesionCajaID: s.ID,
		Tipo:         in.Tipo,
		Metodo:       in.Metodo,
		Moneda:       in.Moneda,
		Monto:        in.Monto,
		TasaCambio:   tasa,
		MontoBs:      montoBs,
		Descripcion:  strings.TrimSpace(in.Descripcion),
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.CreateMovimiento(ctx, m); err != nil {
		return nil, err
	}
	out := toMovimientoResponse(m)
	return &out, nil
}

// CerrarCaja hace el arqueo y cierra la sesión.
func (uc *UseCase) CerrarCaja(ctx context.Context, companyID, sesionID string, in dto.CerrarCajaRequest) (*dto.SesionCajaResponse, error) {
	if in.MontoDeclarado.IsNegative() {
		return nil, fmt.Errorf("%w: el monto declarado no puede ser negativo", domain.ErrInvalidInput)
	}
	s, err := uc.cargarSesion(ctx, companyID, sesionID)
	if err != nil {
		return nil, err
	}
	if s.Estado != entity.CajaAbierta {
		return nil, domain.ErrCajaCerrada
	}
	movs, err := uc.repo.ListMovimientos(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	a := CalcularArqueo(s.MontoInicial, movs, in.MontoDeclarado, uc.umbrales)
	now := uc.now()
	declarado := in.MontoDeclarado
	s.MontoEsperado = &a.Esperado
	s.MontoDeclarado = &declarado
	s.Desvio = &a.Desvio
	s.DesvioPct = &a.Porcentaje
	s.ClasificacionDesvio = a.Clasificacion
	s.Estado = entity.CajaCerrada
	s.ClosedAt = &now
	if err := uc.repo.Cerrar(ctx, s); err != nil {
		return nil, err
	}

	ev := uc.log.Info
	if a.Clasificacion == entity.DesvioCritico {
		ev = uc.log.Warn
	}
	ev().Str("sesion_id", s.ID).
		Str("esperado", a.Esperado.StringFixed(2)).
		Str("desvio", a.Desvio.StringFixed(2)).
		Str("clasificacion", a.Clasificacion).
		Msg("caja cerrada")

	out := toSesionResponse(s, movs)
	return &out, nil
}

// GetSesion sesión con sus movimientos.
func (uc *UseCase) GetSesion(ctx context.Context, companyID, sesionID string) (*dto.SesionCajaResponse, error) {
	s, err := uc.cargarSesion(ctx, companyID, sesionID)
	if err != nil {
		return nil, err
	}
	movs, err := uc.repo.ListMovimientos(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	out := toSesionResponse(s, movs)
	return &out, nil
}

func (uc *UseCase) cargarSesion(ctx context.Context, companyID, id string) (*entity.SesionCaja, error) {
	s, err := uc.repo.GetSesion(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return s, nil
}

func toSesionResponse(s *entity.SesionCaja, movs []*entity.MovimientoCaja) dto.SesionCajaResponse {
	out := dto.SesionCajaResponse{
		ID:             s.ID,
		PuntoDeVenta:   s.PuntoDeVenta,
		UsuarioID:      s.UsuarioID,
		Estado:         s.Estado,
		MontoInicial:   s.MontoInicial,
		MontoEsperado:  s.MontoEsperado,
		MontoDeclarado: s.MontoDeclarado,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		Movimientos:    make([]dto.MovimientoCajaResponse, 0, len(movs)),
	}
	if s.Desvio != nil {
		pct := decimal.Zero
		if s.DesvioPct != nil {
			pct = *s.DesvioPct
		}
		out.Desvio = &dto.DesvioResponse{Monto: *s.Desvio, Porcentaje: pct, Clasificacion: s.ClasificacionDesvio}
	}
	for _, m := range movs {
		out.Movimientos = append(out.Movimientos, toMovimientoResponse(m))
	}
	return out
}

func toMovimientoResponse(m *entity.MovimientoCaja) dto.MovimientoCajaResponse {
	return dto.MovimientoCajaResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Metodo:      m.Metodo,
		Moneda:      m.Moneda,
		Monto:       m.Monto,
		TasaCambio:  m.TasaCambio,
		MontoBs:     m.MontoBs,
		Descripcion: m.Descripcion,
		CreatedAt:   m.CreatedAt,
	}
}
