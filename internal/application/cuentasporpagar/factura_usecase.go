package cuentasporpagar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
	"github.com/jhoicas/Backoffice-api/pkg/rif"
)

const fechaLayout = "2006-01-02"

// FacturaUseCase alta, consulta y listado de facturas por pagar y sus notas de crédito.
type FacturaUseCase struct {
	facturaRepo     repository.FacturaRepository
	notaCreditoRepo repository.NotaCreditoRepository
	notaDebitoRepo  repository.NotaDebitoRepository
	txRunner        PagoTxRunner
	log             *logger.Logger
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	facturaRepo repository.FacturaRepository,
	notaCreditoRepo repository.NotaCreditoRepository,
	notaDebitoRepo repository.NotaDebitoRepository,
	txRunner PagoTxRunner,
	log *logger.Logger,
) *FacturaUseCase {
	return &FacturaUseCase{
		facturaRepo:     facturaRepo,
		notaCreditoRepo: notaCreditoRepo,
		notaDebitoRepo:  notaDebitoRepo,
		txRunner:        txRunner,
		log:             log.WithComponent("cuentasporpagar"),
	}
}

// CreateFactura valida la factura, calcula los campos derivados y la persiste en estado pendiente.
func (uc *FacturaUseCase) CreateFactura(ctx context.Context, companyID string, in dto.CreateFacturaRequest) (*dto.FacturaResponse, error) {
	in.Numero = strings.TrimSpace(in.Numero)
	in.ProveedorNombre = strings.TrimSpace(in.ProveedorNombre)
	if in.Numero == "" || in.ProveedorNombre == "" || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	proveedorRIF, err := rif.Normalize(in.ProveedorRIF)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := validarMontos(in.BaseImponible, in.MontoExento, in.AlicuotaIVA, in.PorcentajeRetencion); err != nil {
		return nil, err
	}
	if !in.TasaCambio.IsPositive() {
		return nil, &diferencial.InvalidRateError{Campo: "tasa_cambio", Valor: in.TasaCambio}
	}

	existing, err := uc.facturaRepo.GetByNumero(ctx, companyID, proveedorRIF, in.Numero)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	derivado := diferencial.RecalcularDocumento(diferencial.DocumentoInput{
		BaseImponible:       in.BaseImponible,
		MontoExento:         in.MontoExento,
		AlicuotaIVA:         in.AlicuotaIVA,
		PorcentajeRetencion: in.PorcentajeRetencion,
		TasaCambio:          in.TasaCambio,
	})

	now := time.Now()
	f := &entity.Factura{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		Numero:              in.Numero,
		NumeroControl:       strings.TrimSpace(in.NumeroControl),
		Fecha:               in.Fecha,
		FechaVencimiento:    in.FechaVencimiento,
		ProveedorNombre:     in.ProveedorNombre,
		ProveedorRIF:        proveedorRIF,
		ProveedorDireccion:  strings.TrimSpace(in.ProveedorDireccion),
		SubTotal:            derivado.SubTotal,
		MontoExento:         in.MontoExento,
		BaseImponible:       in.BaseImponible,
		AlicuotaIVA:         in.AlicuotaIVA,
		IVA:                 derivado.IVA,
		Total:               derivado.Total,
		TasaCambio:          in.TasaCambio,
		MontoUSD:            derivado.MontoUSD,
		PorcentajeRetencion: in.PorcentajeRetencion,
		RetencionIVA:        derivado.RetencionIVA,
		Estado:              entity.FacturaPendiente,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.facturaRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	uc.log.Info().Str("company_id", companyID).Str("factura_id", f.ID).Str("numero", f.Numero).Msg("factura registrada")
	out := toFacturaResponse(f, nil, nil)
	return &out, nil
}

// GetFactura devuelve la factura con sus notas de crédito, la nota de débito (si existe) y el monto final.
func (uc *FacturaUseCase) GetFactura(ctx context.Context, companyID, id string) (*dto.FacturaDetailResponse, error) {
	f, err := uc.facturaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	notas, err := uc.notaCreditoRepo.ListByFactura(ctx, id)
	if err != nil {
		return nil, err
	}
	nd, err := uc.notaDebitoRepo.GetByFactura(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.FacturaDetailResponse{
		FacturaResponse: toFacturaResponse(f, notas, nd),
		NotasCredito:    make([]dto.NotaCreditoResponse, 0, len(notas)),
	}
	for _, nc := range notas {
		out.NotasCredito = append(out.NotasCredito, toNotaCreditoResponse(nc))
	}
	if nd != nil {
		r := toNotaDebitoResponse(nd)
		out.NotaDebito = &r
	}
	return out, nil
}

// ListFacturas listado paginado y filtrado con el monto final de cada factura.
func (uc *FacturaUseCase) ListFacturas(ctx context.Context, companyID string, filtro entity.FacturaFiltro, page dto.PageRequest) (*dto.FacturaListResponse, error) {
	page.Normalize()
	facturas, total, err := uc.facturaRepo.List(ctx, companyID, filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	rows, err := uc.enriquecer(ctx, facturas)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacturaResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toFacturaResponse(r.factura, r.notas, r.notaDebito))
	}
	return &dto.FacturaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// CreateNotaCredito registra una nota de crédito sobre una factura pendiente de la misma empresa.
func (uc *FacturaUseCase) CreateNotaCredito(ctx context.Context, companyID, facturaID string, in dto.CreateNotaCreditoRequest) (*dto.NotaCreditoResponse, error) {
	in.Numero = strings.TrimSpace(in.Numero)
	if in.Numero == "" || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := validarMontos(in.BaseImponible, in.MontoExento, in.AlicuotaIVA, in.PorcentajeRetencion); err != nil {
		return nil, err
	}

	// La factura queda bloqueada hasta el commit: un pago concurrente espera a que la
	// nota exista, o la nota ve la factura ya pagada.
	var nc *entity.NotaCredito
	err := uc.txRunner.RunPago(ctx, func(facturaRepo repository.FacturaRepository, notaCreditoRepo repository.NotaCreditoRepository, _ repository.NotaDebitoRepository) error {
		f, err := cargarFactura(ctx, facturaRepo, companyID, facturaID)
		if err != nil {
			return err
		}
		if f.Estado != entity.FacturaPendiente {
			return fmt.Errorf("%w: la factura %s ya fue pagada", domain.ErrConflict, f.Numero)
		}

		// Sin tasa propia la nota se valora a la tasa de la factura.
		tasa := in.TasaCambio
		if !tasa.IsPositive() {
			tasa = f.TasaCambio
		}
		derivado := diferencial.RecalcularDocumento(diferencial.DocumentoInput{
			BaseImponible:       in.BaseImponible,
			MontoExento:         in.MontoExento,
			AlicuotaIVA:         in.AlicuotaIVA,
			PorcentajeRetencion: in.PorcentajeRetencion,
			TasaCambio:          tasa,
		})

		nc = &entity.NotaCredito{
			ID:                  uuid.New().String(),
			CompanyID:           companyID,
			FacturaID:           f.ID,
			FacturaAfectada:     f.Numero,
			Numero:              in.Numero,
			NumeroControl:       strings.TrimSpace(in.NumeroControl),
			Fecha:               in.Fecha,
			SubTotal:            derivado.SubTotal,
			MontoExento:         in.MontoExento,
			BaseImponible:       in.BaseImponible,
			AlicuotaIVA:         in.AlicuotaIVA,
			IVA:                 derivado.IVA,
			Total:               derivado.Total,
			TasaCambio:          tasa,
			MontoUSD:            derivado.MontoUSD,
			PorcentajeRetencion: in.PorcentajeRetencion,
			RetencionIVA:        derivado.RetencionIVA,
			CreatedAt:           time.Now(),
		}
		return notaCreditoRepo.Create(ctx, nc)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("factura_id", nc.FacturaID).Str("nota_credito_id", nc.ID).Msg("nota de crédito registrada")
	out := toNotaCreditoResponse(nc)
	return &out, nil
}

// ParseFiltro convierte los query params del listado en el filtro de dominio.
func ParseFiltro(in dto.FacturaFiltroRequest) (entity.FacturaFiltro, error) {
	filtro := entity.FacturaFiltro{
		Proveedor: strings.TrimSpace(in.Proveedor),
		Numero:    strings.TrimSpace(in.Numero),
		Estado:    strings.TrimSpace(in.Estado),
	}
	if filtro.Estado != "" && filtro.Estado != entity.FacturaPendiente && filtro.Estado != entity.FacturaPagada {
		return filtro, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, filtro.Estado)
	}
	if in.Desde != "" {
		t, err := time.Parse(fechaLayout, in.Desde)
		if err != nil {
			return filtro, fmt.Errorf("%w: desde debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		filtro.Desde = &t
	}
	if in.Hasta != "" {
		t, err := time.Parse(fechaLayout, in.Hasta)
		if err != nil {
			return filtro, fmt.Errorf("%w: hasta debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		// inclusivo: hasta el final del día
		t = t.Add(24*time.Hour - time.Nanosecond)
		filtro.Hasta = &t
	}
	if filtro.Desde != nil && filtro.Hasta != nil && filtro.Hasta.Before(*filtro.Desde) {
		return filtro, fmt.Errorf("%w: hasta es anterior a desde", domain.ErrInvalidInput)
	}
	return filtro, nil
}

type facturaConNotas struct {
	factura    *entity.Factura
	notas      []*entity.NotaCredito
	notaDebito *entity.NotaDebito
}

// enriquecer carga en lote las notas de crédito y débito de las facturas.
func (uc *FacturaUseCase) enriquecer(ctx context.Context, facturas []*entity.Factura) ([]facturaConNotas, error) {
	if len(facturas) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(facturas))
	for _, f := range facturas {
		ids = append(ids, f.ID)
	}
	notasPorFactura, err := uc.notaCreditoRepo.ListByFacturas(ctx, ids)
	if err != nil {
		return nil, err
	}
	ndPorFactura, err := uc.notaDebitoRepo.ListByFacturas(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]facturaConNotas, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, facturaConNotas{
			factura:    f,
			notas:      notasPorFactura[f.ID],
			notaDebito: ndPorFactura[f.ID],
		})
	}
	return out, nil
}

func validarMontos(base, exento, alicuota, retencion decimal.Decimal) error {
	cien := decimal.NewFromInt(100)
	if base.IsNegative() || exento.IsNegative() {
		return fmt.Errorf("%w: los montos no pueden ser negativos", domain.ErrInvalidInput)
	}
	if alicuota.IsNegative() || alicuota.GreaterThan(cien) {
		return fmt.Errorf("%w: alícuota de IVA fuera de rango (0-100)", domain.ErrInvalidInput)
	}
	if retencion.IsNegative() || retencion.GreaterThan(cien) {
		return fmt.Errorf("%w: porcentaje de retención fuera de rango (0-100)", domain.ErrInvalidInput)
	}
	return nil
}
