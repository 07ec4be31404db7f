package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CajaRepository = (*CajaRepo)(nil)

// CajaRepo implementación del puerto CajaRepository sobre PostgreSQL.
type CajaRepo struct {
	pool *pgxpool.Pool
}

// NewCajaRepository construye el adaptador de persistencia para cajas.
func NewCajaRepository(pool *pgxpool.Pool) *CajaRepo {
	return &CajaRepo{pool: pool}
}

const sesionColumns = `
	id, company_id, punto_de_venta, usuario_id, monto_inicial, monto_esperado, monto_declarado,
	desvio, desvio_pct, clasificacion_desvio, estado, opened_at, closed_at`

// CreateSesion abre la sesión. El índice parcial único traduce una segunda apertura a ErrConflict.
func (r *CajaRepo) CreateSesion(ctx context.Context, s *entity.SesionCaja) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sesiones_caja (id, company_id, punto_de_venta, usuario_id, monto_inicial, estado, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CompanyID, s.PuntoDeVenta, s.UsuarioID, s.MontoInicial, s.Estado, s.OpenedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya hay una caja abierta en el punto %d", domain.ErrConflict, s.PuntoDeVenta)
		}
		return fmt.Errorf("insert sesión de caja: %w", err)
	}
	return nil
}

// GetSesion sesión por ID; nil si no existe.
func (r *CajaRepo) GetSesion(ctx context.Context, id string) (*entity.SesionCaja, error) {
	s, err := scanSesion(r.pool.QueryRow(ctx, `SELECT `+sesionColumns+` FROM sesiones_caja WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sesión de caja: %w", err)
	}
	return s, nil
}

// GetAbierta sesión abierta del punto de venta o nil.
func (r *CajaRepo) GetAbierta(ctx context.Context, companyID string, puntoDeVenta int) (*entity.SesionCaja, error) {
	s, err := scanSesion(r.pool.QueryRow(ctx,
		`SELECT `+sesionColumns+` FROM sesiones_caja WHERE company_id = $1 AND punto_de_venta = $2 AND estado = 'abierta'`,
		companyID, puntoDeVenta))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caja abierta: %w", err)
	}
	return s, nil
}

// Cerrar guarda el arqueo. Solo cierra sesiones abiertas; si otra petición la cerró antes devuelve ErrCajaCerrada.
func (r *CajaRepo) Cerrar(ctx context.Context, s *entity.SesionCaja) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE sesiones_caja SET
			monto_esperado = $2, monto_declarado = $3, desvio = $4, desvio_pct = $5,
			clasificacion_desvio = $6, estado = 'cerrada', closed_at = $7
		WHERE id = $1 AND estado = 'abierta'`,
		s.ID, s.MontoEsperado, s.MontoDeclarado, s.Desvio, s.DesvioPct, s.ClasificacionDesvio, s.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("cerrar caja: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCajaCerrada
	}
	return nil
}

// CreateMovimiento inserta el movimiento solo si la sesión sigue abierta.
func (r *CajaRepo) CreateMovimiento(ctx context.Context, m *entity.MovimientoCaja) error {
	cmd, err := r.pool.Exec(ctx, `
		INSERT INTO movimientos_caja (id, sesion_caja_id, tipo, metodo, moneda, monto, tasa_cambio, monto_bs, descripcion, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		WHERE EXISTS (SELECT 1 FROM sesiones_caja WHERE id = $2 AND estado = 'abierta')`,
		m.ID, m.SesionCajaID, m.Tipo, m.Metodo, m.Moneda, m.Monto, m.TasaCambio, m.MontoBs, m.Descripcion, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento de caja: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCajaCerrada
	}
	return nil
}

// ListMovimientos movimientos de la sesión en orden cronológico.
func (r *CajaRepo) ListMovimientos(ctx context.Context, sesionID string) ([]*entity.MovimientoCaja, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sesion_caja_id, tipo, metodo, moneda, monto, tasa_cambio, monto_bs, descripcion, created_at
		FROM movimientos_caja WHERE sesion_caja_id = $1 ORDER BY created_at, id`, sesionID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de caja: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoCaja
	for rows.Next() {
		var m entity.MovimientoCaja
		if err := rows.Scan(&m.ID, &m.SesionCajaID, &m.Tipo, &m.Metodo, &m.Moneda, &m.Monto, &m.TasaCambio, &m.MontoBs, &m.Descripcion, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento de caja: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanSesion(row pgx.Row) (*entity.SesionCaja, error) {
	var s entity.SesionCaja
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.PuntoDeVenta, &s.UsuarioID, &s.MontoInicial, &s.MontoEsperado, &s.MontoDeclarado,
		&s.Desvio, &s.DesvioPct, &s.ClasificacionDesvio, &s.Estado, &s.OpenedAt, &s.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
