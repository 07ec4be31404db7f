package diferencial

import (
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CalcularMontoFinalPagar total de la factura menos sus notas de crédito más el neto de la
// nota de débito, si existe. Puede ser negativo (factura sobre-acreditada): el caller lo
// muestra como saldo a favor.
func CalcularMontoFinalPagar(factura *entity.Factura, notas []*entity.NotaCredito, nd *entity.NotaDebito) decimal.Decimal {
	if factura == nil {
		return decimal.Zero
	}
	monto := factura.Total.Sub(SumaTotal(notas))
	if nd != nil {
		monto = monto.Add(nd.MontoNetoPagarNotaDebito)
	}
	return monto
}

// SumaTotal suma el total en Bs de las notas de crédito (ignora nil).
func SumaTotal(notas []*entity.NotaCredito) decimal.Decimal {
	sum := decimal.Zero
	for _, nc := range notas {
		if nc != nil {
			sum = sum.Add(nc.Total)
		}
	}
	return sum
}
