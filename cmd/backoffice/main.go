// backoffice CLI: cálculos fiscales sin servidor, exportes y migraciones.
//
// Uso:
//
//	backoffice calcular documento --base 1000 --alicuota 16 --retencion 75 --tasa 36
//	backoffice calcular nota-debito --monto-usd 1000 --tasa-original 36 --tasa-pago 40 --nc-usd 150
//	backoffice exportar facturas --company <id> --out facturas.xlsx
//	backoffice migrar
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional; las variables del entorno tienen prioridad
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
