package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ResumenRepository = (*ResumenRepo)(nil)

// ResumenRepo consultas read-only para el resumen del backoffice.
type ResumenRepo struct {
	pool *pgxpool.Pool
}

// NewResumenRepository construye el adaptador.
func NewResumenRepository(pool *pgxpool.Pool) *ResumenRepo {
	return &ResumenRepo{pool: pool}
}

// GetCuentasPorPagar facturas pendientes y su total neto de notas de crédito.
func (r *ResumenRepo) GetCuentasPorPagar(ctx context.Context, companyID string, now time.Time) (repository.CxPResult, error) {
	const query = `
		SELECT
			COUNT(*),
			COALESCE(SUM(f.total - COALESCE(nc.total, 0)), 0),
			COUNT(*) FILTER (WHERE f.fecha_vencimiento IS NOT NULL AND f.fecha_vencimiento < $2::date)
		FROM facturas f
		LEFT JOIN (
			SELECT factura_id, SUM(total) AS total FROM notas_credito GROUP BY factura_id
		) nc ON nc.factura_id = f.id
		WHERE f.company_id = $1 AND f.estado = 'pendiente'`
	var res repository.CxPResult
	if err := r.pool.QueryRow(ctx, query, companyID, now).Scan(&res.FacturasPendientes, &res.TotalPendiente, &res.VencidasPendientes); err != nil {
		return res, fmt.Errorf("resumen cuentas por pagar: %w", err)
	}
	return res, nil
}

// GetDiferencialCambiario suma el neto de las notas de débito con fecha en [from, to].
func (r *ResumenRepo) GetDiferencialCambiario(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(monto_neto_pagar_nota_debito), 0)
		FROM notas_debito
		WHERE company_id = $1 AND fecha BETWEEN $2::date AND $3::date`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, companyID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("resumen diferencial cambiario: %w", err)
	}
	return total, nil
}

// GetCreditos cartera pendiente y vencida.
func (r *ResumenRepo) GetCreditos(ctx context.Context, companyID string, now time.Time) (repository.CreditosResult, error) {
	const query = `
		SELECT
			COUNT(*),
			COALESCE(SUM(saldo), 0),
			COUNT(*) FILTER (WHERE fecha_vencimiento < $2::date),
			COALESCE(SUM(saldo) FILTER (WHERE fecha_vencimiento < $2::date), 0)
		FROM creditos
		WHERE company_id = $1 AND estado = 'pendiente'`
	var res repository.CreditosResult
	if err := r.pool.QueryRow(ctx, query, companyID, now).Scan(&res.Pendientes, &res.SaldoTotal, &res.Vencidos, &res.SaldoVencido); err != nil {
		return res, fmt.Errorf("resumen créditos: %w", err)
	}
	return res, nil
}

// CountCajasAbiertas sesiones de caja abiertas de la empresa.
func (r *ResumenRepo) CountCajasAbiertas(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sesiones_caja WHERE company_id = $1 AND estado = 'abierta'`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("resumen cajas abiertas: %w", err)
	}
	return n, nil
}
