package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `
	id, company_id, numero, numero_control, fecha, fecha_vencimiento,
	proveedor_nombre, proveedor_rif, proveedor_direccion,
	sub_total, monto_exento, base_imponible, alicuota_iva, iva, total,
	tasa_cambio, monto_usd, porcentaje_retencion, retencion_iva,
	estado, created_at, updated_at`

// Create persiste una factura nueva.
func (r *FacturaRepo) Create(ctx context.Context, f *entity.Factura) error {
	query := `INSERT INTO facturas (` + facturaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.CompanyID, f.Numero, f.NumeroControl, f.Fecha, f.FechaVencimiento,
		f.ProveedorNombre, f.ProveedorRIF, f.ProveedorDireccion,
		f.SubTotal, f.MontoExento, f.BaseImponible, f.AlicuotaIVA, f.IVA, f.Total,
		f.TasaCambio, f.MontoUSD, f.PorcentajeRetencion, f.RetencionIVA,
		f.Estado, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; nil si no existe. Dentro de una tx bloquea la fila
// para que pago y notas de crédito sobre la misma factura se serialicen.
func (r *FacturaRepo) GetByID(ctx context.Context, id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE id = $1`
	if _, inTx := r.q.(pgx.Tx); inTx {
		query += ` FOR UPDATE`
	}
	f, err := scanFactura(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return f, nil
}

// GetByNumero busca por la clave de negocio (empresa, RIF del proveedor, número).
func (r *FacturaRepo) GetByNumero(ctx context.Context, companyID, proveedorRIF, numero string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE company_id = $1 AND proveedor_rif = $2 AND numero = $3`
	f, err := scanFactura(r.q.QueryRow(ctx, query, companyID, proveedorRIF, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura by numero: %w", err)
	}
	return f, nil
}

// List aplica el filtro y devuelve la página ordenada por fecha descendente junto con el total.
func (r *FacturaRepo) List(ctx context.Context, companyID string, filtro entity.FacturaFiltro, limit, offset int) ([]*entity.Factura, int, error) {
	where, args := facturaWhere(companyID, filtro)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM facturas WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count facturas: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM facturas WHERE %s ORDER BY fecha DESC, numero DESC, id LIMIT $%d OFFSET $%d`,
		facturaColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, total, rows.Err()
}

// UpdateEstado cambia el estado. Si la factura ya tenía ese estado devuelve ErrConflict,
// lo que impide registrar dos pagos concurrentes sobre la misma factura.
func (r *FacturaRepo) UpdateEstado(ctx context.Context, id, estado string, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE facturas SET estado = $2, updated_at = $3 WHERE id = $1 AND estado <> $2`, id, estado, at)
	if err != nil {
		return fmt.Errorf("update estado factura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: la factura no existe o ya está %s", domain.ErrConflict, estado)
	}
	return nil
}

func facturaWhere(companyID string, f entity.FacturaFiltro) (string, []any) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Proveedor != "" {
		args = append(args, likePattern(f.Proveedor))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(proveedor_nombre ILIKE $%d OR proveedor_rif ILIKE $%d)", n, n))
	}
	if f.Numero != "" {
		add("numero ILIKE $%d", likePattern(f.Numero))
	}
	if f.Estado != "" {
		add("estado = $%d", f.Estado)
	}
	if f.Desde != nil {
		add("fecha >= $%d", *f.Desde)
	}
	if f.Hasta != nil {
		add("fecha <= $%d", *f.Hasta)
	}
	return strings.Join(conds, " AND "), args
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	err := row.Scan(
		&f.ID, &f.CompanyID, &f.Numero, &f.NumeroControl, &f.Fecha, &f.FechaVencimiento,
		&f.ProveedorNombre, &f.ProveedorRIF, &f.ProveedorDireccion,
		&f.SubTotal, &f.MontoExento, &f.BaseImponible, &f.AlicuotaIVA, &f.IVA, &f.Total,
		&f.TasaCambio, &f.MontoUSD, &f.PorcentajeRetencion, &f.RetencionIVA,
		&f.Estado, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
