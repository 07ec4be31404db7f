// Package calculos expone el motor de diferencial cambiario para formularios y simulaciones
// sin tocar la base de datos.
package calculos

import (
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// RecalcularDocumento deriva los campos de solo lectura de una factura o nota de crédito.
// Valores vacíos o mal formados cuentan como cero; nunca falla.
func RecalcularDocumento(in dto.RecalcularDocumentoRequest) dto.DocumentoDerivadoResponse {
	out := diferencial.RecalcularDocumento(diferencial.NuevoDocumentoInput(
		in.BaseImponible, in.MontoExento, in.AlicuotaIVA, in.PorcentajeRetencion, in.TasaCambio,
	))
	return dto.DocumentoDerivadoResponse{
		SubTotal:     out.SubTotal,
		IVA:          out.IVA,
		Total:        out.Total,
		RetencionIVA: out.RetencionIVA,
		MontoUSD:     out.MontoUSD,
	}
}

// SimularNotaDebito calcula la nota de débito a partir de cifras sueltas.
// Tasas inválidas devuelven *diferencial.InvalidRateError.
func SimularNotaDebito(in dto.SimularNotaDebitoRequest) (*dto.NotaDebitoResponse, error) {
	factura := &entity.Factura{
		MontoUSD:            diferencial.Coerce(in.MontoUSD),
		TasaCambio:          diferencial.Coerce(in.TasaCambio),
		AlicuotaIVA:         diferencial.Coerce(in.AlicuotaIVA),
		PorcentajeRetencion: diferencial.Coerce(in.PorcentajeRetencion),
	}
	notas := make([]*entity.NotaCredito, 0, len(in.NotasCreditoUSD))
	for _, v := range in.NotasCreditoUSD {
		notas = append(notas, &entity.NotaCredito{MontoUSD: diferencial.Coerce(v)})
	}

	calc, err := diferencial.CalcularNotaDebito(factura, notas, diferencial.Coerce(in.TasaCambioPago))
	if err != nil {
		return nil, err
	}
	return &dto.NotaDebitoResponse{
		NotasCreditoIDs:            []string{},
		TasaCambioOriginal:         calc.TasaCambioOriginal,
		TasaCambioPago:             calc.TasaCambioPago,
		MontoUSDNeto:               calc.MontoUSDNeto,
		DiferencialCambiarioConIVA: calc.DiferencialCambiarioConIVA,
		BaseImponibleDiferencial:   calc.BaseImponibleDiferencial,
		IVADiferencial:             calc.IVADiferencial,
		RetencionIVADiferencial:    calc.RetencionIVADiferencial,
		MontoNetoPagarNotaDebito:   calc.MontoNetoPagarNotaDebito,
		SaldoAFavor:                calc.DiferencialCambiarioConIVA.IsNegative(),
	}, nil
}
