package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaDebito documenta el diferencial cambiario entre la emisión de la factura y su pago.
// Se genera una sola vez al registrar el pago; solo Fecha y TasaCambioPago son editables
// y un cambio de tasa recalcula todos los montos.
type NotaDebito struct {
	ID                         string
	CompanyID                  string
	FacturaID                  string
	Numero                     string
	Fecha                      time.Time
	NotasCreditoIDs            []string
	TasaCambioOriginal         decimal.Decimal
	TasaCambioPago             decimal.Decimal
	MontoUSDNeto               decimal.Decimal
	DiferencialCambiarioConIVA decimal.Decimal
	BaseImponibleDiferencial   decimal.Decimal
	IVADiferencial             decimal.Decimal
	RetencionIVADiferencial    decimal.Decimal
	MontoNetoPagarNotaDebito   decimal.Decimal
	CreatedBy                  string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// EsSaldoAFavor indica un diferencial negativo (el bolívar se apreció entre emisión y pago).
func (n *NotaDebito) EsSaldoAFavor() bool {
	return n.DiferencialCambiarioConIVA.IsNegative()
}
