// Package resumen arma el tablero del backoffice: cuentas por pagar, diferencial
// cambiario del mes, cartera de créditos y cajas abiertas.
package resumen

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// UseCase genera el resumen de la empresa.
//
// Fuente de datos: ResumenRepository (consultas read-only).
type UseCase struct {
	repo repository.ResumenRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ResumenRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// GetResumen construye el ResumenDTO para la empresa indicada.
//
// Cuatro llamadas en paralelo:
//  1. GetCuentasPorPagar        → facturas pendientes, vencidas y total
//  2. GetDiferencialCambiario   → notas de débito del mes
//  3. GetCreditos               → saldo por cobrar y vencidos
//  4. CountCajasAbiertas
func (uc *UseCase) GetResumen(ctx context.Context, companyID string) (*dto.ResumenDTO, error) {
	now := uc.now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24*time.Hour - time.Nanosecond)

	type cxpResult struct {
		r   repository.CxPResult
		err error
	}
	type difResult struct {
		v   decimal.Decimal
		err error
	}
	type creditosResult struct {
		r   repository.CreditosResult
		err error
	}
	type cajasResult struct {
		n   int
		err error
	}

	cxpCh := make(chan cxpResult, 1)
	difCh := make(chan difResult, 1)
	credCh := make(chan creditosResult, 1)
	cajasCh := make(chan cajasResult, 1)

	go func() {
		r, err := uc.repo.GetCuentasPorPagar(ctx, companyID, now)
		cxpCh <- cxpResult{r, err}
	}()
	go func() {
		v, err := uc.repo.GetDiferencialCambiario(ctx, companyID, monthStart, todayEnd)
		difCh <- difResult{v, err}
	}()
	go func() {
		r, err := uc.repo.GetCreditos(ctx, companyID, now)
		credCh <- creditosResult{r, err}
	}()
	go func() {
		n, err := uc.repo.CountCajasAbiertas(ctx, companyID)
		cajasCh <- cajasResult{n, err}
	}()

	cxp := <-cxpCh
	dif := <-difCh
	cred := <-credCh
	cajas := <-cajasCh

	if cxp.err != nil {
		return nil, fmt.Errorf("resumen: cuentas por pagar: %w", cxp.err)
	}
	if dif.err != nil {
		return nil, fmt.Errorf("resumen: diferencial cambiario: %w", dif.err)
	}
	if cred.err != nil {
		return nil, fmt.Errorf("resumen: créditos: %w", cred.err)
	}
	if cajas.err != nil {
		return nil, fmt.Errorf("resumen: cajas: %w", cajas.err)
	}

	return &dto.ResumenDTO{
		FacturasPendientes: cxp.r.FacturasPendientes,
		FacturasVencidas:   cxp.r.VencidasPendientes,
		TotalPorPagar:      cxp.r.TotalPendiente.Round(2),
		DiferencialMes:     dif.v.Round(2),
		CreditosPendientes: cred.r.Pendientes,
		SaldoPorCobrar:     cred.r.SaldoTotal.Round(2),
		CreditosVencidos:   cred.r.Vencidos,
		SaldoVencido:       cred.r.SaldoVencido.Round(2),
		CajasAbiertas:      cajas.n,
		DateLabel:          monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
