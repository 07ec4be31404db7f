package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CreditoRepository = (*CreditoRepo)(nil)

// CreditoRepo implementación de CreditoRepository (usable con pool o tx).
type CreditoRepo struct {
	q Querier
}

// NewCreditoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditoRepository(q Querier) *CreditoRepo {
	return &CreditoRepo{q: q}
}

const creditoColumns = `
	id, company_id, cliente_nombre, cliente_rif, numero_documento, fecha, fecha_vencimiento,
	monto, tasa_cambio, monto_usd, saldo, estado, created_by, created_at, updated_at`

// Create persiste un crédito.
func (r *CreditoRepo) Create(ctx context.Context, c *entity.Credito) error {
	query := `INSERT INTO creditos (` + creditoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.ClienteNombre, c.ClienteRIF, c.NumeroDocumento, c.Fecha, c.FechaVencimiento,
		c.Monto, c.TasaCambio, c.MontoUSD, c.Saldo, c.Estado, nullIfEmpty(c.CreatedBy), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert crédito: %w", err)
	}
	return nil
}

// GetByID crédito por ID; nil si no existe. Dentro de una tx bloquea la fila para el abono.
func (r *CreditoRepo) GetByID(ctx context.Context, id string) (*entity.Credito, error) {
	query := `SELECT ` + creditoColumns + ` FROM creditos WHERE id = $1`
	if _, inTx := r.q.(pgx.Tx); inTx {
		query += ` FOR UPDATE`
	}
	c, err := scanCredito(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crédito: %w", err)
	}
	return c, nil
}

// List filtra por cliente (nombre o RIF), estado y vencidos a la fecha now.
func (r *CreditoRepo) List(ctx context.Context, companyID string, f entity.CreditoFiltro, now time.Time, limit, offset int) ([]*entity.Credito, int, error) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}
	if f.Cliente != "" {
		args = append(args, likePattern(f.Cliente))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(cliente_nombre ILIKE $%d OR cliente_rif ILIKE $%d)", n, n))
	}
	if f.Estado != "" {
		args = append(args, f.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if f.Vencidos {
		args = append(args, now)
		conds = append(conds, fmt.Sprintf("estado = 'pendiente' AND fecha_vencimiento < $%d::date", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM creditos WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count créditos: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM creditos WHERE %s ORDER BY fecha_vencimiento, fecha, id LIMIT $%d OFFSET $%d`,
		creditoColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list créditos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Credito
	for rows.Next() {
		c, err := scanCredito(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan crédito: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// UpdateSaldo actualiza saldo y estado tras un abono.
func (r *CreditoRepo) UpdateSaldo(ctx context.Context, id string, saldo decimal.Decimal, estado string, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE creditos SET saldo = $2, estado = $3, updated_at = $4 WHERE id = $1`, id, saldo, estado, at)
	if err != nil {
		return fmt.Errorf("update saldo crédito: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateAbono persiste un abono (inmutable).
func (r *CreditoRepo) CreateAbono(ctx context.Context, a *entity.AbonoCredito) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO abonos_credito (id, credito_id, monto, metodo, referencia, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.CreditoID, a.Monto, a.Metodo, a.Referencia, a.Fecha, nullIfEmpty(a.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert abono: %w", err)
	}
	return nil
}

// ListAbonos abonos del crédito en orden cronológico.
func (r *CreditoRepo) ListAbonos(ctx context.Context, creditoID string) ([]*entity.AbonoCredito, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, credito_id, monto, metodo, referencia, fecha, created_by
		FROM abonos_credito WHERE credito_id = $1 ORDER BY fecha, id`, creditoID)
	if err != nil {
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()
	var list []*entity.AbonoCredito
	for rows.Next() {
		var (
			a         entity.AbonoCredito
			createdBy *string
		)
		if err := rows.Scan(&a.ID, &a.CreditoID, &a.Monto, &a.Metodo, &a.Referencia, &a.Fecha, &createdBy); err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		a.CreatedBy = stringOrEmpty(createdBy)
		list = append(list, &a)
	}
	return list, rows.Err()
}

func scanCredito(row pgx.Row) (*entity.Credito, error) {
	var (
		c         entity.Credito
		createdBy *string
	)
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.ClienteNombre, &c.ClienteRIF, &c.NumeroDocumento, &c.Fecha, &c.FechaVencimiento,
		&c.Monto, &c.TasaCambio, &c.MontoUSD, &c.Saldo, &c.Estado, &createdBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = stringOrEmpty(createdBy)
	return &c, nil
}
