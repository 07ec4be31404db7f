package dto

import "github.com/shopspring/decimal"

// RecalcularDocumentoRequest valores del formulario tal como llegan (número, cadena o null).
type RecalcularDocumentoRequest struct {
	BaseImponible       any `json:"base_imponible"`
	MontoExento         any `json:"monto_exento"`
	AlicuotaIVA         any `json:"alicuota_iva"`
	PorcentajeRetencion any `json:"porcentaje_retencion"`
	TasaCambio          any `json:"tasa_cambio"`
}

// DocumentoDerivadoResponse campos de solo lectura del formulario.
type DocumentoDerivadoResponse struct {
	SubTotal     decimal.Decimal `json:"sub_total"`
	IVA          decimal.Decimal `json:"iva"`
	Total        decimal.Decimal `json:"total"`
	RetencionIVA decimal.Decimal `json:"retencion_iva"`
	MontoUSD     decimal.Decimal `json:"monto_usd"`
}

// SimularNotaDebitoRequest cálculo de nota de débito sin factura persistida.
type SimularNotaDebitoRequest struct {
	MontoUSD            any   `json:"monto_usd"`
	TasaCambio          any   `json:"tasa_cambio"`
	AlicuotaIVA         any   `json:"alicuota_iva"`
	PorcentajeRetencion any   `json:"porcentaje_retencion"`
	NotasCreditoUSD     []any `json:"notas_credito_usd"`
	TasaCambioPago      any   `json:"tasa_cambio_pago"`
}
