package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCreditoRequest body para POST /api/creditos.
type CreateCreditoRequest struct {
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteRIF       string          `json:"cliente_rif"`
	NumeroDocumento  string          `json:"numero_documento"`
	Fecha            time.Time       `json:"fecha"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	Monto            decimal.Decimal `json:"monto"`
	TasaCambio       decimal.Decimal `json:"tasa_cambio"`
}

// CreditoResponse crédito en respuestas.
type CreditoResponse struct {
	ID               string          `json:"id"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteRIF       string          `json:"cliente_rif"`
	NumeroDocumento  string          `json:"numero_documento"`
	Fecha            time.Time       `json:"fecha"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	Monto            decimal.Decimal `json:"monto"`
	TasaCambio       decimal.Decimal `json:"tasa_cambio"`
	MontoUSD         decimal.Decimal `json:"monto_usd"`
	Saldo            decimal.Decimal `json:"saldo"`
	Estado           string          `json:"estado"`
	Vencido          bool            `json:"vencido"`
}

// CreditoDetailResponse crédito con sus abonos.
type CreditoDetailResponse struct {
	CreditoResponse
	Abonos []AbonoResponse `json:"abonos"`
}

// CreditoListResponse listado paginado de créditos.
type CreditoListResponse struct {
	Items []CreditoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// RegistrarAbonoRequest body para POST /api/creditos/:id/abonos.
type RegistrarAbonoRequest struct {
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia,omitempty"`
	Fecha      *time.Time      `json:"fecha,omitempty"`
}

// AbonoResponse abono en respuestas.
type AbonoResponse struct {
	ID         string          `json:"id"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia,omitempty"`
	Fecha      time.Time       `json:"fecha"`
}
