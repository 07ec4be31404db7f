package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CxPResult totales crudos de cuentas por pagar pendientes.
type CxPResult struct {
	FacturasPendientes int
	// TotalPendiente Σ (total factura − Σ total notas de crédito) de las facturas pendientes.
	TotalPendiente decimal.Decimal
	// VencidasPendientes facturas pendientes con fecha de vencimiento pasada.
	VencidasPendientes int
}

// CreditosResult totales crudos de ventas a crédito.
type CreditosResult struct {
	Pendientes   int
	SaldoTotal   decimal.Decimal
	Vencidos     int
	SaldoVencido decimal.Decimal
}

// ResumenRepository consultas de lectura para el resumen del backoffice.
// Las implementaciones son read-only.
type ResumenRepository interface {
	GetCuentasPorPagar(ctx context.Context, companyID string, now time.Time) (CxPResult, error)
	// GetDiferencialCambiario suma el neto a pagar de las notas de débito emitidas en el período.
	GetDiferencialCambiario(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error)
	GetCreditos(ctx context.Context, companyID string, now time.Time) (CreditosResult, error)
	CountCajasAbiertas(ctx context.Context, companyID string) (int, error)
}
