package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un crédito (venta a crédito).
const (
	CreditoPendiente = "pendiente"
	CreditoPagado    = "pagado"
)

// Credito representa una venta a crédito a un cliente.
type Credito struct {
	ID               string
	CompanyID        string
	ClienteNombre    string
	ClienteRIF       string
	NumeroDocumento  string
	Fecha            time.Time
	FechaVencimiento time.Time
	Monto            decimal.Decimal // Bs
	TasaCambio       decimal.Decimal
	MontoUSD         decimal.Decimal
	Saldo            decimal.Decimal // Bs pendientes
	Estado           string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Vencido indica si el crédito sigue pendiente después de su fecha de vencimiento.
func (c *Credito) Vencido(now time.Time) bool {
	return c.Estado == CreditoPendiente && now.After(c.FechaVencimiento)
}

// AbonoCredito pago parcial o total de un crédito. Inmutable.
type AbonoCredito struct {
	ID         string
	CreditoID  string
	Monto      decimal.Decimal
	Metodo     string
	Referencia string
	Fecha      time.Time
	CreatedBy  string
}

// CreditoFiltro criterios de búsqueda de créditos.
type CreditoFiltro struct {
	Cliente  string
	Estado   string
	Vencidos bool
}
