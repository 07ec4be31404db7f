package dto

import "github.com/shopspring/decimal"

// PrecioResponse fila de lista de precios. PrecioBs solo si se envió tasa.
type PrecioResponse struct {
	Origen      string           `json:"origen"`
	Codigo      string           `json:"codigo"`
	Descripcion string           `json:"descripcion"`
	PrecioUSD   decimal.Decimal  `json:"precio_usd"`
	PrecioBs    *decimal.Decimal `json:"precio_bs,omitempty"`
	Existencia  decimal.Decimal  `json:"existencia"`
}

// PrecioListResponse listado paginado de precios.
type PrecioListResponse struct {
	Items []PrecioResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
