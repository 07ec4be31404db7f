package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFacturaRequest body para POST /api/facturas.
// Los campos derivados (subtotal, iva, total, retención, monto USD) se calculan en el servidor.
type CreateFacturaRequest struct {
	Numero              string          `json:"numero"`
	NumeroControl       string          `json:"numero_control"`
	Fecha               time.Time       `json:"fecha"`
	FechaVencimiento    *time.Time      `json:"fecha_vencimiento,omitempty"`
	ProveedorNombre     string          `json:"proveedor_nombre"`
	ProveedorRIF        string          `json:"proveedor_rif"`
	ProveedorDireccion  string          `json:"proveedor_direccion,omitempty"`
	BaseImponible       decimal.Decimal `json:"base_imponible"`
	MontoExento         decimal.Decimal `json:"monto_exento"`
	AlicuotaIVA         decimal.Decimal `json:"alicuota_iva"`
	PorcentajeRetencion decimal.Decimal `json:"porcentaje_retencion"`
	TasaCambio          decimal.Decimal `json:"tasa_cambio"`
}

// FacturaResponse factura en listados y detalle.
type FacturaResponse struct {
	ID                  string          `json:"id"`
	Numero              string          `json:"numero"`
	NumeroControl       string          `json:"numero_control"`
	Fecha               time.Time       `json:"fecha"`
	FechaVencimiento    *time.Time      `json:"fecha_vencimiento,omitempty"`
	ProveedorNombre     string          `json:"proveedor_nombre"`
	ProveedorRIF        string          `json:"proveedor_rif"`
	ProveedorDireccion  string          `json:"proveedor_direccion,omitempty"`
	SubTotal            decimal.Decimal `json:"sub_total"`
	MontoExento         decimal.Decimal `json:"monto_exento"`
	BaseImponible       decimal.Decimal `json:"base_imponible"`
	AlicuotaIVA         decimal.Decimal `json:"alicuota_iva"`
	IVA                 decimal.Decimal `json:"iva"`
	Total               decimal.Decimal `json:"total"`
	TasaCambio          decimal.Decimal `json:"tasa_cambio"`
	MontoUSD            decimal.Decimal `json:"monto_usd"`
	PorcentajeRetencion decimal.Decimal `json:"porcentaje_retencion"`
	RetencionIVA        decimal.Decimal `json:"retencion_iva"`
	Estado              string          `json:"estado"`
	MontoFinal          decimal.Decimal `json:"monto_final"`
	SaldoAFavor         bool            `json:"saldo_a_favor"`
}

// FacturaDetailResponse GET /api/facturas/:id: factura + notas asociadas.
type FacturaDetailResponse struct {
	FacturaResponse
	NotasCredito []NotaCreditoResponse `json:"notas_credito"`
	NotaDebito   *NotaDebitoResponse   `json:"nota_debito,omitempty"`
}

// FacturaListResponse listado paginado de facturas.
type FacturaListResponse struct {
	Items []FacturaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FacturaFiltroRequest query params del listado / exporte.
type FacturaFiltroRequest struct {
	Proveedor string `query:"proveedor"`
	Numero    string `query:"numero"`
	Estado    string `query:"estado"`
	Desde     string `query:"desde"` // YYYY-MM-DD
	Hasta     string `query:"hasta"` // YYYY-MM-DD
}

// CreateNotaCreditoRequest body para POST /api/facturas/:id/notas-credito.
type CreateNotaCreditoRequest struct {
	Numero              string          `json:"numero"`
	NumeroControl       string          `json:"numero_control"`
	Fecha               time.Time       `json:"fecha"`
	BaseImponible       decimal.Decimal `json:"base_imponible"`
	MontoExento         decimal.Decimal `json:"monto_exento"`
	AlicuotaIVA         decimal.Decimal `json:"alicuota_iva"`
	PorcentajeRetencion decimal.Decimal `json:"porcentaje_retencion"`
	TasaCambio          decimal.Decimal `json:"tasa_cambio"`
}

// NotaCreditoResponse nota de crédito en respuestas.
type NotaCreditoResponse struct {
	ID              string          `json:"id"`
	FacturaID       string          `json:"factura_id"`
	FacturaAfectada string          `json:"factura_afectada"`
	Numero          string          `json:"numero"`
	NumeroControl   string          `json:"numero_control"`
	Fecha           time.Time       `json:"fecha"`
	SubTotal        decimal.Decimal `json:"sub_total"`
	MontoExento     decimal.Decimal `json:"monto_exento"`
	BaseImponible   decimal.Decimal `json:"base_imponible"`
	IVA             decimal.Decimal `json:"iva"`
	Total           decimal.Decimal `json:"total"`
	TasaCambio      decimal.Decimal `json:"tasa_cambio"`
	MontoUSD        decimal.Decimal `json:"monto_usd"`
	RetencionIVA    decimal.Decimal `json:"retencion_iva"`
}

// RegistrarPagoRequest body para POST /api/facturas/:id/pago.
type RegistrarPagoRequest struct {
	TasaCambioPago decimal.Decimal `json:"tasa_cambio_pago"`
	Fecha          *time.Time      `json:"fecha,omitempty"`  // hoy si se omite
	Numero         string          `json:"numero,omitempty"` // consecutivo automático si se omite
}

// UpdateNotaDebitoRequest body para PATCH /api/notas-debito/:id.
type UpdateNotaDebitoRequest struct {
	Fecha          *time.Time       `json:"fecha,omitempty"`
	TasaCambioPago *decimal.Decimal `json:"tasa_cambio_pago,omitempty"`
}

// NotaDebitoResponse nota de débito por diferencial cambiario.
type NotaDebitoResponse struct {
	ID                         string          `json:"id,omitempty"`
	FacturaID                  string          `json:"factura_id"`
	Numero                     string          `json:"numero,omitempty"`
	Fecha                      *time.Time      `json:"fecha,omitempty"`
	NotasCreditoIDs            []string        `json:"notas_credito_ids"`
	TasaCambioOriginal         decimal.Decimal `json:"tasa_cambio_original"`
	TasaCambioPago             decimal.Decimal `json:"tasa_cambio_pago"`
	MontoUSDNeto               decimal.Decimal `json:"monto_usd_neto"`
	DiferencialCambiarioConIVA decimal.Decimal `json:"diferencial_cambiario_con_iva"`
	BaseImponibleDiferencial   decimal.Decimal `json:"base_imponible_diferencial"`
	IVADiferencial             decimal.Decimal `json:"iva_diferencial"`
	RetencionIVADiferencial    decimal.Decimal `json:"retencion_iva_diferencial"`
	MontoNetoPagarNotaDebito   decimal.Decimal `json:"monto_neto_pagar_nota_debito"`
	SaldoAFavor                bool            `json:"saldo_a_favor"`
}

// PagoResponse resultado de registrar el pago: nota de débito generada y monto final.
type PagoResponse struct {
	FacturaID  string             `json:"factura_id"`
	Estado     string             `json:"estado"`
	NotaDebito NotaDebitoResponse `json:"nota_debito"`
	MontoFinal decimal.Decimal    `json:"monto_final"`
}
