// Package formato presenta montos para documentos impresos y hojas de cálculo
// con la convención venezolana (punto de miles, coma decimal).
package formato

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-VE"))

// Bs formatea un monto en bolívares con 2 decimales: "Bs. 1.234,56".
func Bs(d decimal.Decimal) string {
	return "Bs. " + Numero(d, 2)
}

// USD formatea un monto en dólares con 2 decimales: "$ 1.234,56".
func USD(d decimal.Decimal) string {
	return "$ " + Numero(d, 2)
}

// Numero redondea a places decimales y aplica separadores locales.
func Numero(d decimal.Decimal, places int32) string {
	f, _ := d.Round(places).Float64()
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), f)
}

// Porcentaje "16%" o "75,5%".
func Porcentaje(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String() + "%"
	}
	return Numero(d, 2) + "%"
}
