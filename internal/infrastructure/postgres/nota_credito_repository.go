package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.NotaCreditoRepository = (*NotaCreditoRepo)(nil)

// NotaCreditoRepo implementación de NotaCreditoRepository (usable con pool o tx).
type NotaCreditoRepo struct {
	q Querier
}

// NewNotaCreditoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotaCreditoRepository(q Querier) *NotaCreditoRepo {
	return &NotaCreditoRepo{q: q}
}

const notaCreditoColumns = `
	id, company_id, factura_id, factura_afectada, numero, numero_control, fecha,
	sub_total, monto_exento, base_imponible, alicuota_iva, iva, total,
	tasa_cambio, monto_usd, porcentaje_retencion, retencion_iva, created_at`

// Create persiste una nota de crédito.
func (r *NotaCreditoRepo) Create(ctx context.Context, nc *entity.NotaCredito) error {
	query := `INSERT INTO notas_credito (` + notaCreditoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		nc.ID, nc.CompanyID, nc.FacturaID, nc.FacturaAfectada, nc.Numero, nc.NumeroControl, nc.Fecha,
		nc.SubTotal, nc.MontoExento, nc.BaseImponible, nc.AlicuotaIVA, nc.IVA, nc.Total,
		nc.TasaCambio, nc.MontoUSD, nc.PorcentajeRetencion, nc.RetencionIVA, nc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert nota de crédito: %w", err)
	}
	return nil
}

// ListByFactura notas de la factura por fecha de emisión.
func (r *NotaCreditoRepo) ListByFactura(ctx context.Context, facturaID string) ([]*entity.NotaCredito, error) {
	query := `SELECT ` + notaCreditoColumns + ` FROM notas_credito WHERE factura_id = $1 ORDER BY fecha, created_at`
	rows, err := r.q.Query(ctx, query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("list notas de crédito: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotaCredito
	for rows.Next() {
		nc, err := scanNotaCredito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota de crédito: %w", err)
		}
		list = append(list, nc)
	}
	return list, rows.Err()
}

// ListByFacturas notas de varias facturas agrupadas por factura_id.
func (r *NotaCreditoRepo) ListByFacturas(ctx context.Context, facturaIDs []string) (map[string][]*entity.NotaCredito, error) {
	out := make(map[string][]*entity.NotaCredito, len(facturaIDs))
	if len(facturaIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + notaCreditoColumns + ` FROM notas_credito WHERE factura_id = ANY($1::uuid[]) ORDER BY fecha, created_at`
	rows, err := r.q.Query(ctx, query, facturaIDs)
	if err != nil {
		return nil, fmt.Errorf("list notas de crédito por facturas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		nc, err := scanNotaCredito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota de crédito: %w", err)
		}
		out[nc.FacturaID] = append(out[nc.FacturaID], nc)
	}
	return out, rows.Err()
}

func scanNotaCredito(row pgx.Row) (*entity.NotaCredito, error) {
	var nc entity.NotaCredito
	err := row.Scan(
		&nc.ID, &nc.CompanyID, &nc.FacturaID, &nc.FacturaAfectada, &nc.Numero, &nc.NumeroControl, &nc.Fecha,
		&nc.SubTotal, &nc.MontoExento, &nc.BaseImponible, &nc.AlicuotaIVA, &nc.IVA, &nc.Total,
		&nc.TasaCambio, &nc.MontoUSD, &nc.PorcentajeRetencion, &nc.RetencionIVA, &nc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &nc, nil
}
