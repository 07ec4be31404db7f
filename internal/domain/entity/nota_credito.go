package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaCredito reduce el monto efectivo de una factura. Misma forma monetaria que Factura.
type NotaCredito struct {
	ID                  string
	CompanyID           string
	FacturaID           string
	FacturaAfectada     string // número de la factura afectada
	Numero              string
	NumeroControl       string
	Fecha               time.Time
	SubTotal            decimal.Decimal
	MontoExento         decimal.Decimal
	BaseImponible       decimal.Decimal
	AlicuotaIVA         decimal.Decimal
	IVA                 decimal.Decimal
	Total               decimal.Decimal
	TasaCambio          decimal.Decimal
	MontoUSD            decimal.Decimal
	PorcentajeRetencion decimal.Decimal
	RetencionIVA        decimal.Decimal
	CreatedAt           time.Time
}
