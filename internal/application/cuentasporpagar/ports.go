// Package cuentasporpagar contiene los casos de uso de facturas de proveedores,
// notas de crédito y notas de débito por diferencial cambiario.
package cuentasporpagar

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PagoTxRunner ejecuta fn dentro de una transacción con los repositorios de cuentas por pagar.
// Si fn retorna error se hace rollback.
type PagoTxRunner interface {
	RunPago(ctx context.Context, fn func(
		facturaRepo repository.FacturaRepository,
		notaCreditoRepo repository.NotaCreditoRepository,
		notaDebitoRepo repository.NotaDebitoRepository,
	) error) error
}

// FacturaExportRow fila del exporte de facturas con el monto final ya calculado.
type FacturaExportRow struct {
	Factura          *entity.Factura
	TotalNotaCredito decimal.Decimal
	NotaDebito       *entity.NotaDebito
	MontoFinal       decimal.Decimal
}

// FacturasXLSXGenerator genera la hoja de cálculo del listado de facturas.
type FacturasXLSXGenerator interface {
	GenerateFacturasXLSX(ctx context.Context, rows []FacturaExportRow) ([]byte, error)
}

// NotaDebitoPDFGenerator genera la representación impresa de la nota de débito.
type NotaDebitoPDFGenerator interface {
	GenerateNotaDebitoPDF(ctx context.Context, nd *entity.NotaDebito, factura *entity.Factura, notas []*entity.NotaCredito, company *entity.Company) ([]byte, error)
}
