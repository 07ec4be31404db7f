package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la sesión de caja.
const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

// Tipos y métodos de movimiento de caja.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"

	MetodoEfectivo      = "efectivo"
	MetodoPunto         = "punto"
	MetodoTransferencia = "transferencia"
	MetodoDivisa        = "divisa"

	MonedaVES = "VES"
	MonedaUSD = "USD"
)

// Clasificación del desvío en el arqueo.
const (
	DesvioNormal      = "normal"
	DesvioAdvertencia = "advertencia"
	DesvioCritico     = "critico"
)

// SesionCaja ciclo de vida de una caja: apertura, movimientos y cierre con arqueo.
type SesionCaja struct {
	ID                  string
	CompanyID           string
	PuntoDeVenta        int
	UsuarioID           string
	MontoInicial        decimal.Decimal
	MontoEsperado       *decimal.Decimal // calculado al cerrar
	MontoDeclarado      *decimal.Decimal
	Desvio              *decimal.Decimal
	DesvioPct           *decimal.Decimal
	ClasificacionDesvio string
	Estado              string
	OpenedAt            time.Time
	ClosedAt            *time.Time
}

// MovimientoCaja evento inmutable del libro de caja. MontoBs es el equivalente en bolívares.
type MovimientoCaja struct {
	ID           string
	SesionCajaID string
	Tipo         string
	Metodo       string
	Moneda       string
	Monto        decimal.Decimal
	TasaCambio   decimal.Decimal
	MontoBs      decimal.Decimal
	Descripcion  string
	CreatedAt    time.Time
}
