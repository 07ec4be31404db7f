// Package diferencial calcula el diferencial cambiario de las facturas en divisas:
// campos derivados de facturas y notas de crédito, montos de la nota de débito que
// genera el pago a una tasa distinta de la original, y el monto final a pagar.
//
// Todas las funciones son puras y seguras para uso concurrente. Se trabaja con
// precisión completa; el redondeo queda para la presentación.
package diferencial

import (
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvalidRateError tasa de cambio o alícuota que impide calcular la nota de débito.
type InvalidRateError struct {
	Campo string
	Valor decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("%s: %s = %s", domain.ErrInvalidRate.Error(), e.Campo, e.Valor.String())
}

// Unwrap permite errors.Is(err, domain.ErrInvalidRate).
func (e *InvalidRateError) Unwrap() error { return domain.ErrInvalidRate }

// NotaDebitoCalculada montos de la nota de débito por diferencial cambiario.
type NotaDebitoCalculada struct {
	TasaCambioOriginal         decimal.Decimal
	TasaCambioPago             decimal.Decimal
	MontoUSDNeto               decimal.Decimal
	DiferencialCambiarioConIVA decimal.Decimal
	BaseImponibleDiferencial   decimal.Decimal
	IVADiferencial             decimal.Decimal
	RetencionIVADiferencial    decimal.Decimal
	MontoNetoPagarNotaDebito   decimal.Decimal
}

// CalcularNotaDebito calcula el diferencial cambiario de una factura pagada a tasaCambioPago.
//
//	montoUSDNeto   = factura.MontoUSD - Σ nc.MontoUSD
//	diferencial    = montoUSDNeto * (tasaCambioPago - factura.TasaCambio)
//	base           = diferencial / (1 + alícuota/100)
//	iva            = diferencial - base
//	retención      = iva * porcentajeRetención/100
//	neto a pagar   = diferencial - retención
//
// Un diferencial negativo (el bolívar se apreció) se devuelve tal cual.
func CalcularNotaDebito(factura *entity.Factura, notas []*entity.NotaCredito, tasaCambioPago decimal.Decimal) (*NotaDebitoCalculada, error) {
	if factura == nil {
		return nil, fmt.Errorf("%w: factura requerida", domain.ErrInvalidInput)
	}
	if !tasaCambioPago.IsPositive() {
		return nil, &InvalidRateError{Campo: "tasa_cambio_pago", Valor: tasaCambioPago}
	}
	if !factura.TasaCambio.IsPositive() {
		return nil, &InvalidRateError{Campo: "tasa_cambio", Valor: factura.TasaCambio}
	}
	if factura.AlicuotaIVA.IsNegative() {
		return nil, &InvalidRateError{Campo: "alicuota_iva", Valor: factura.AlicuotaIVA}
	}

	montoUSDNeto := factura.MontoUSD.Sub(SumaMontoUSD(notas))
	diferencial := montoUSDNeto.Mul(tasaCambioPago.Sub(factura.TasaCambio))

	divisor := decimal.NewFromInt(1).Add(factura.AlicuotaIVA.Div(cien))
	base := diferencial.Div(divisor)
	iva := diferencial.Sub(base)
	retencion := iva.Mul(factura.PorcentajeRetencion).Div(cien)

	return &NotaDebitoCalculada{
		TasaCambioOriginal:         factura.TasaCambio,
		TasaCambioPago:             tasaCambioPago,
		MontoUSDNeto:               montoUSDNeto,
		DiferencialCambiarioConIVA: diferencial,
		BaseImponibleDiferencial:   base,
		IVADiferencial:             iva,
		RetencionIVADiferencial:    retencion,
		MontoNetoPagarNotaDebito:   diferencial.Sub(retencion),
	}, nil
}

// AplicarA copia los montos calculados a la nota de débito persistible.
func (c *NotaDebitoCalculada) AplicarA(nd *entity.NotaDebito) {
	nd.TasaCambioOriginal = c.TasaCambioOriginal
	nd.TasaCambioPago = c.TasaCambioPago
	nd.MontoUSDNeto = c.MontoUSDNeto
	nd.DiferencialCambiarioConIVA = c.DiferencialCambiarioConIVA
	nd.BaseImponibleDiferencial = c.BaseImponibleDiferencial
	nd.IVADiferencial = c.IVADiferencial
	nd.RetencionIVADiferencial = c.RetencionIVADiferencial
	nd.MontoNetoPagarNotaDebito = c.MontoNetoPagarNotaDebito
}

// SumaMontoUSD suma el monto USD de las notas de crédito (ignora nil).
func SumaMontoUSD(notas []*entity.NotaCredito) decimal.Decimal {
	sum := decimal.Zero
	for _, nc := range notas {
		if nc != nil {
			sum = sum.Add(nc.MontoUSD)
		}
	}
	return sum
}
