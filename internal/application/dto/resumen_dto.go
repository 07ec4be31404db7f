package dto

import "github.com/shopspring/decimal"

// ResumenDTO respuesta de GET /api/resumen: indicadores del día para el backoffice.
type ResumenDTO struct {
	// Cuentas por pagar
	FacturasPendientes int             `json:"facturas_pendientes"`
	FacturasVencidas   int             `json:"facturas_vencidas"`
	TotalPorPagar      decimal.Decimal `json:"total_por_pagar"` // Bs, neto de notas de crédito

	// Diferencial cambiario pagado en notas de débito del mes en curso
	DiferencialMes decimal.Decimal `json:"diferencial_mes"`

	// Ventas a crédito
	CreditosPendientes int             `json:"creditos_pendientes"`
	SaldoPorCobrar     decimal.Decimal `json:"saldo_por_cobrar"`
	CreditosVencidos   int             `json:"creditos_vencidos"`
	SaldoVencido       decimal.Decimal `json:"saldo_vencido"`

	CajasAbiertas int `json:"cajas_abiertas"`

	DateLabel string `json:"date_label"` // ej: "Junio 2024"
}
