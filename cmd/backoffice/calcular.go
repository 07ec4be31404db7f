package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Backoffice-api/internal/application/calculos"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/formato"
)

func newCalcularCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calcular",
		Short: "Cálculos fiscales sin base de datos",
	}
	cmd.AddCommand(newCalcularDocumentoCmd(), newCalcularNotaDebitoCmd())
	return cmd
}

func newCalcularDocumentoCmd() *cobra.Command {
	var (
		base, exento, alicuota, retencion, tasa string
		asJSON                                  bool
	)
	cmd := &cobra.Command{
		Use:   "documento",
		Short: "Sub total, IVA, total, retención y monto USD de una factura o nota de crédito",
		Example: `  backoffice calcular documento --base 1000 --exento 250 --alicuota 16 --retencion 75 --tasa 36
  backoffice calcular documento --base "1.000,50" --alicuota 16 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := calculos.RecalcularDocumento(dto.RecalcularDocumentoRequest{
				BaseImponible:       base,
				MontoExento:         exento,
				AlicuotaIVA:         alicuota,
				PorcentajeRetencion: retencion,
				TasaCambio:          tasa,
			})
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeTable(cmd.OutOrStdout(), [][2]string{
				{"Sub total", formato.Bs(out.SubTotal)},
				{"IVA", formato.Bs(out.IVA)},
				{"Total", formato.Bs(out.Total)},
				{"Retención IVA", formato.Bs(out.RetencionIVA)},
				{"Monto USD", formato.USD(out.MontoUSD)},
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&base, "base", "0", "base imponible (Bs)")
	f.StringVar(&exento, "exento", "0", "monto exento (Bs)")
	f.StringVar(&alicuota, "alicuota", "16", "alícuota de IVA (%)")
	f.StringVar(&retencion, "retencion", "0", "porcentaje de retención de IVA (%)")
	f.StringVar(&tasa, "tasa", "0", "tasa de cambio Bs/USD")
	f.BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func newCalcularNotaDebitoCmd() *cobra.Command {
	var (
		montoUSD, tasaOriginal, tasaPago, alicuota, retencion string
		notasUSD                                              []string
		asJSON                                                bool
	)
	cmd := &cobra.Command{
		Use:   "nota-debito",
		Short: "Nota de débito por diferencial cambiario entre la tasa original y la de pago",
		Example: `  backoffice calcular nota-debito --monto-usd 1000 --tasa-original 36 --tasa-pago 40 --alicuota 16 --retencion 75
  backoffice calcular nota-debito --monto-usd 1000 --tasa-original 36 --tasa-pago 40 --nc-usd 150 --nc-usd 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notas := make([]any, 0, len(notasUSD))
			for _, n := range notasUSD {
				notas = append(notas, n)
			}
			out, err := calculos.SimularNotaDebito(dto.SimularNotaDebitoRequest{
				MontoUSD:            montoUSD,
				TasaCambio:          tasaOriginal,
				AlicuotaIVA:         alicuota,
				PorcentajeRetencion: retencion,
				NotasCreditoUSD:     notas,
				TasaCambioPago:      tasaPago,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			rows := [][2]string{
				{"Monto USD neto", formato.USD(out.MontoUSDNeto)},
				{"Tasa original", formato.Numero(out.TasaCambioOriginal, 4)},
				{"Tasa de pago", formato.Numero(out.TasaCambioPago, 4)},
				{"Diferencial con IVA", signed(out.DiferencialCambiarioConIVA)},
				{"Base imponible", signed(out.BaseImponibleDiferencial)},
				{"IVA", signed(out.IVADiferencial)},
				{"Retención IVA", signed(out.RetencionIVADiferencial)},
				{"Monto neto a pagar", signed(out.MontoNetoPagarNotaDebito)},
			}
			if out.SaldoAFavor {
				rows = append(rows, [2]string{"Saldo a favor", "sí"})
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}
	f := cmd.Flags()
	f.StringVar(&montoUSD, "monto-usd", "", "monto de la factura en USD")
	f.StringVar(&tasaOriginal, "tasa-original", "", "tasa de cambio de la factura")
	f.StringVar(&tasaPago, "tasa-pago", "", "tasa de cambio del pago")
	f.StringVar(&alicuota, "alicuota", "16", "alícuota de IVA (%)")
	f.StringVar(&retencion, "retencion", "0", "porcentaje de retención de IVA (%)")
	f.StringArrayVar(&notasUSD, "nc-usd", nil, "monto USD de una nota de crédito (repetible)")
	f.BoolVar(&asJSON, "json", false, "salida JSON")
	_ = cmd.MarkFlagRequired("monto-usd")
	_ = cmd.MarkFlagRequired("tasa-original")
	_ = cmd.MarkFlagRequired("tasa-pago")
	return cmd
}

func writeTable(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\t\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + formato.Bs(d.Abs())
	}
	return formato.Bs(d)
}
