package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura por pagar.
const (
	FacturaPendiente = "pendiente"
	FacturaPagada    = "pagada"
)

// Factura representa una factura de proveedor (documento fiscal original, cuentas por pagar).
// Los montos en Bs; TasaCambio en Bs por USD; AlicuotaIVA y PorcentajeRetencion en porcentaje.
type Factura struct {
	ID                  string
	CompanyID           string
	Numero              string
	NumeroControl       string
	Fecha               time.Time
	FechaVencimiento    *time.Time
	ProveedorNombre     string
	ProveedorRIF        string
	ProveedorDireccion  string
	SubTotal            decimal.Decimal // BaseImponible + MontoExento
	MontoExento         decimal.Decimal
	BaseImponible       decimal.Decimal
	AlicuotaIVA         decimal.Decimal
	IVA                 decimal.Decimal
	Total               decimal.Decimal // SubTotal + IVA
	TasaCambio          decimal.Decimal
	MontoUSD            decimal.Decimal
	PorcentajeRetencion decimal.Decimal
	RetencionIVA        decimal.Decimal
	Estado              string // pendiente, pagada
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FacturaFiltro criterios de búsqueda para el listado de facturas.
type FacturaFiltro struct {
	Proveedor string
	Numero    string
	Estado    string
	Desde     *time.Time
	Hasta     *time.Time
}
