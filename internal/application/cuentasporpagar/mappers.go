package cuentasporpagar

import (
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func toFacturaResponse(f *entity.Factura, notas []*entity.NotaCredito, nd *entity.NotaDebito) dto.FacturaResponse {
	montoFinal := diferencial.CalcularMontoFinalPagar(f, notas, nd)
	return dto.FacturaResponse{
		ID:                  f.ID,
		Numero:              f.Numero,
		NumeroControl:       f.NumeroControl,
		Fecha:               f.Fecha,
		FechaVencimiento:    f.FechaVencimiento,
		ProveedorNombre:     f.ProveedorNombre,
		ProveedorRIF:        f.ProveedorRIF,
		ProveedorDireccion:  f.ProveedorDireccion,
		SubTotal:            f.SubTotal,
		MontoExento:         f.MontoExento,
		BaseImponible:       f.BaseImponible,
		AlicuotaIVA:         f.AlicuotaIVA,
		IVA:                 f.IVA,
		Total:               f.Total,
		TasaCambio:          f.TasaCambio,
		MontoUSD:            f.MontoUSD,
		PorcentajeRetencion: f.PorcentajeRetencion,
		RetencionIVA:        f.RetencionIVA,
		Estado:              f.Estado,
		MontoFinal:          montoFinal,
		SaldoAFavor:         montoFinal.IsNegative(),
	}
}

func toNotaCreditoResponse(nc *entity.NotaCredito) dto.NotaCreditoResponse {
	return dto.NotaCreditoResponse{
		ID:              nc.ID,
		FacturaID:       nc.FacturaID,
		FacturaAfectada: nc.FacturaAfectada,
		Numero:          nc.Numero,
		NumeroControl:   nc.NumeroControl,
		Fecha:           nc.Fecha,
		SubTotal:        nc.SubTotal,
		MontoExento:     nc.MontoExento,
		BaseImponible:   nc.BaseImponible,
		IVA:             nc.IVA,
		Total:           nc.Total,
		TasaCambio:      nc.TasaCambio,
		MontoUSD:        nc.MontoUSD,
		RetencionIVA:    nc.RetencionIVA,
	}
}

func toNotaDebitoResponse(nd *entity.NotaDebito) dto.NotaDebitoResponse {
	var fecha *time.Time
	if !nd.Fecha.IsZero() {
		f := nd.Fecha
		fecha = &f
	}
	ids := nd.NotasCreditoIDs
	if ids == nil {
		ids = []string{}
	}
	return dto.NotaDebitoResponse{
		ID:                         nd.ID,
		FacturaID:                  nd.FacturaID,
		Numero:                     nd.Numero,
		Fecha:                      fecha,
		NotasCreditoIDs:            ids,
		TasaCambioOriginal:         nd.TasaCambioOriginal,
		TasaCambioPago:             nd.TasaCambioPago,
		MontoUSDNeto:               nd.MontoUSDNeto,
		DiferencialCambiarioConIVA: nd.DiferencialCambiarioConIVA,
		BaseImponibleDiferencial:   nd.BaseImponibleDiferencial,
		IVADiferencial:             nd.IVADiferencial,
		RetencionIVADiferencial:    nd.RetencionIVADiferencial,
		MontoNetoPagarNotaDebito:   nd.MontoNetoPagarNotaDebito,
		SaldoAFavor:                nd.EsSaldoAFavor(),
	}
}

func notaCreditoIDs(notas []*entity.NotaCredito) []string {
	ids := make([]string, 0, len(notas))
	for _, nc := range notas {
		ids = append(ids, nc.ID)
	}
	return ids
}
