package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.NotaDebitoRepository = (*NotaDebitoRepo)(nil)

// NotaDebitoRepo implementación de NotaDebitoRepository (usable con pool o tx).
type NotaDebitoRepo struct {
	q Querier
}

// NewNotaDebitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotaDebitoRepository(q Querier) *NotaDebitoRepo {
	return &NotaDebitoRepo{q: q}
}

const notaDebitoColumns = `
	id, company_id, factura_id, numero, fecha, notas_credito_ids,
	tasa_cambio_original, tasa_cambio_pago, monto_usd_neto, diferencial_cambiario_con_iva,
	base_imponible_diferencial, iva_diferencial, retencion_iva_diferencial, monto_neto_pagar_nota_debito,
	created_by, created_at, updated_at`

// Create persiste la nota de débito. Una segunda nota para la misma factura es ErrConflict.
func (r *NotaDebitoRepo) Create(ctx context.Context, nd *entity.NotaDebito) error {
	ids := nd.NotasCreditoIDs
	if ids == nil {
		ids = []string{}
	}
	query := `INSERT INTO notas_debito (` + notaDebitoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		nd.ID, nd.CompanyID, nd.FacturaID, nd.Numero, nd.Fecha, ids,
		nd.TasaCambioOriginal, nd.TasaCambioPago, nd.MontoUSDNeto, nd.DiferencialCambiarioConIVA,
		nd.BaseImponibleDiferencial, nd.IVADiferencial, nd.RetencionIVADiferencial, nd.MontoNetoPagarNotaDebito,
		nullIfEmpty(nd.CreatedBy), nd.CreatedAt, nd.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la factura ya tiene nota de débito o el número está repetido", domain.ErrConflict)
		}
		return fmt.Errorf("insert nota de débito: %w", err)
	}
	return nil
}

// GetByID nota por ID; nil si no existe.
func (r *NotaDebitoRepo) GetByID(ctx context.Context, id string) (*entity.NotaDebito, error) {
	nd, err := scanNotaDebito(r.q.QueryRow(ctx, `SELECT `+notaDebitoColumns+` FROM notas_debito WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota de débito: %w", err)
	}
	return nd, nil
}

// GetByFactura nota de la factura; nil si todavía no se ha pagado.
func (r *NotaDebitoRepo) GetByFactura(ctx context.Context, facturaID string) (*entity.NotaDebito, error) {
	nd, err := scanNotaDebito(r.q.QueryRow(ctx, `SELECT `+notaDebitoColumns+` FROM notas_debito WHERE factura_id = $1`, facturaID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota de débito por factura: %w", err)
	}
	return nd, nil
}

// ListByFacturas notas de débito indexadas por factura_id.
func (r *NotaDebitoRepo) ListByFacturas(ctx context.Context, facturaIDs []string) (map[string]*entity.NotaDebito, error) {
	out := make(map[string]*entity.NotaDebito, len(facturaIDs))
	if len(facturaIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+notaDebitoColumns+` FROM notas_debito WHERE factura_id = ANY($1::uuid[])`, facturaIDs)
	if err != nil {
		return nil, fmt.Errorf("list notas de débito: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		nd, err := scanNotaDebito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota de débito: %w", err)
		}
		out[nd.FacturaID] = nd
	}
	return out, rows.Err()
}

// Update persiste fecha, tasa de pago y montos recalculados. El resto es inmutable.
func (r *NotaDebitoRepo) Update(ctx context.Context, nd *entity.NotaDebito) error {
	query := `
		UPDATE notas_debito SET
			fecha = $2, tasa_cambio_pago = $3, monto_usd_neto = $4, diferencial_cambiario_con_iva = $5,
			base_imponible_diferencial = $6, iva_diferencial = $7, retencion_iva_diferencial = $8,
			monto_neto_pagar_nota_debito = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		nd.ID, nd.Fecha, nd.TasaCambioPago, nd.MontoUSDNeto, nd.DiferencialCambiarioConIVA,
		nd.BaseImponibleDiferencial, nd.IVADiferencial, nd.RetencionIVADiferencial,
		nd.MontoNetoPagarNotaDebito, nd.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update nota de débito: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumero incrementa el consecutivo de notas de débito de la empresa: ND-00000001, ND-00000002...
func (r *NotaDebitoRepo) NextNumero(ctx context.Context, companyID string) (string, error) {
	const query = `
		INSERT INTO consecutivos (company_id, tipo, ultimo) VALUES ($1, 'nota_debito', 1)
		ON CONFLICT (company_id, tipo) DO UPDATE SET ultimo = consecutivos.ultimo + 1
		RETURNING ultimo`
	var n int64
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return "", fmt.Errorf("consecutivo nota de débito: %w", err)
	}
	return fmt.Sprintf("ND-%08d", n), nil
}

func scanNotaDebito(row pgx.Row) (*entity.NotaDebito, error) {
	var (
		nd        entity.NotaDebito
		createdBy *string
	)
	err := row.Scan(
		&nd.ID, &nd.CompanyID, &nd.FacturaID, &nd.Numero, &nd.Fecha, &nd.NotasCreditoIDs,
		&nd.TasaCambioOriginal, &nd.TasaCambioPago, &nd.MontoUSDNeto, &nd.DiferencialCambiarioConIVA,
		&nd.BaseImponibleDiferencial, &nd.IVADiferencial, &nd.RetencionIVADiferencial, &nd.MontoNetoPagarNotaDebito,
		&createdBy, &nd.CreatedAt, &nd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	nd.CreatedBy = stringOrEmpty(createdBy)
	return &nd, nil
}
