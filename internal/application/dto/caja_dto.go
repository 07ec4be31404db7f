package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbrirCajaRequest body para POST /api/caja/sesiones.
type AbrirCajaRequest struct {
	PuntoDeVenta int             `json:"punto_de_venta"`
	MontoInicial decimal.Decimal `json:"monto_inicial"`
}

// MovimientoCajaRequest body para POST /api/caja/sesiones/:id/movimientos.
type MovimientoCajaRequest struct {
	Tipo        string          `json:"tipo"`   // ingreso | egreso
	Metodo      string          `json:"metodo"` // efectivo | punto | transferencia | divisa
	Moneda      string          `json:"moneda"` // VES | USD
	Monto       decimal.Decimal `json:"monto"`
	TasaCambio  decimal.Decimal `json:"tasa_cambio"` // obligatoria si moneda = USD
	Descripcion string          `json:"descripcion"`
}

// CerrarCajaRequest body para POST /api/caja/sesiones/:id/cierre.
type CerrarCajaRequest struct {
	MontoDeclarado decimal.Decimal `json:"monto_declarado"`
}

// MovimientoCajaResponse movimiento en respuestas.
type MovimientoCajaResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Metodo      string          `json:"metodo"`
	Moneda      string          `json:"moneda"`
	Monto       decimal.Decimal `json:"monto"`
	TasaCambio  decimal.Decimal `json:"tasa_cambio"`
	MontoBs     decimal.Decimal `json:"monto_bs"`
	Descripcion string          `json:"descripcion"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DesvioResponse resultado del arqueo.
type DesvioResponse struct {
	Monto         decimal.Decimal `json:"monto"`
	Porcentaje    decimal.Decimal `json:"porcentaje"`
	Clasificacion string          `json:"clasificacion"` // normal | advertencia | critico
}

// SesionCajaResponse sesión con sus movimientos y, si está cerrada, el arqueo.
type SesionCajaResponse struct {
	ID             string                   `json:"id"`
	PuntoDeVenta   int                      `json:"punto_de_venta"`
	UsuarioID      string                   `json:"usuario_id"`
	Estado         string                   `json:"estado"`
	MontoInicial   decimal.Decimal          `json:"monto_inicial"`
	MontoEsperado  *decimal.Decimal         `json:"monto_esperado,omitempty"`
	MontoDeclarado *decimal.Decimal         `json:"monto_declarado,omitempty"`
	Desvio         *DesvioResponse          `json:"desvio,omitempty"`
	OpenedAt       time.Time                `json:"opened_at"`
	ClosedAt       *time.Time               `json:"closed_at,omitempty"`
	Movimientos    []MovimientoCajaResponse `json:"movimientos"`
}
