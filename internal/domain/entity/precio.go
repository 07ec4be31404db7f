package entity

import "github.com/shopspring/decimal"

// Orígenes de lista de precios (bases de datos POS externas).
const (
	OrigenPrincipal = "principal"
	OrigenSucursal  = "sucursal"
)

// PrecioProducto fila de la lista de precios de un POS externo. Precio en USD.
type PrecioProducto struct {
	Origen      string
	Codigo      string
	Descripcion string
	Precio      decimal.Decimal
	Existencia  decimal.Decimal
}
