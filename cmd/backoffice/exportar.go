package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Backoffice-api/internal/infrastructure/xlsx"
)

func newExportarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exportes XLSX desde la base del backoffice",
	}
	cmd.AddCommand(newExportarFacturasCmd(), newExportarCreditosCmd())
	return cmd
}

func newExportarFacturasCmd() *cobra.Command {
	var (
		companyID, out string
		filtroIn       dto.FacturaFiltroRequest
	)
	cmd := &cobra.Command{
		Use:     "facturas",
		Short:   "Facturas con notas de crédito, nota de débito y monto final",
		Example: `  backoffice exportar facturas --company 6f1c... --estado pendiente --desde 2024-01-01 --out facturas.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filtro, err := cuentasporpagar.ParseFiltro(filtroIn)
			if err != nil {
				return err
			}
			env, err := abrirEntorno(cmd.Context(), "exportar")
			if err != nil {
				return err
			}
			defer env.Close()

			facturaRepo := postgres.NewFacturaRepository(env.pool)
			facturaUC := cuentasporpagar.NewFacturaUseCase(
				facturaRepo,
				postgres.NewNotaCreditoRepository(env.pool),
				postgres.NewNotaDebitoRepository(env.pool),
				postgres.NewTxRunner(env.pool),
				env.log,
			)
			exportUC := cuentasporpagar.NewExportUseCase(facturaUC, facturaRepo, postgres.NewCompanyRepository(env.pool), infraxlsx.NewGenerator(), nil)

			data, err := exportUC.ExportFacturasXLSX(cmd.Context(), companyID, filtro)
			if err != nil {
				return err
			}
			return escribirArchivo(cmd, out, data)
		},
	}
	f := cmd.Flags()
	f.StringVar(&companyID, "company", "", "ID de la empresa")
	f.StringVar(&out, "out", "facturas.xlsx", "archivo de salida")
	f.StringVar(&filtroIn.Proveedor, "proveedor", "", "nombre o RIF del proveedor")
	f.StringVar(&filtroIn.Estado, "estado", "", "pendiente | pagada")
	f.StringVar(&filtroIn.Desde, "desde", "", "fecha inicial YYYY-MM-DD")
	f.StringVar(&filtroIn.Hasta, "hasta", "", "fecha final YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func newExportarCreditosCmd() *cobra.Command {
	var (
		companyID, out string
		filtro         entity.CreditoFiltro
	)
	cmd := &cobra.Command{
		Use:   "creditos",
		Short: "Ventas a crédito con saldo y vencimiento",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := abrirEntorno(cmd.Context(), "exportar")
			if err != nil {
				return err
			}
			defer env.Close()

			uc := creditos.NewUseCase(postgres.NewCreditoRepository(env.pool), postgres.NewTxRunner(env.pool), infraxlsx.NewGenerator(), env.log)
			data, err := uc.ExportCreditosXLSX(cmd.Context(), companyID, filtro)
			if err != nil {
				return err
			}
			return escribirArchivo(cmd, out, data)
		},
	}
	f := cmd.Flags()
	f.StringVar(&companyID, "company", "", "ID de la empresa")
	f.StringVar(&out, "out", "creditos.xlsx", "archivo de salida")
	f.StringVar(&filtro.Cliente, "cliente", "", "nombre o RIF del cliente")
	f.StringVar(&filtro.Estado, "estado", "", "pendiente | pagado")
	f.BoolVar(&filtro.Vencidos, "vencidos", false, "solo vencidos")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func escribirArchivo(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", path, len(data))
	return nil
}
