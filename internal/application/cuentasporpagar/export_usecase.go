package cuentasporpagar

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// exportBatch tamaño de página al recorrer el listado completo para exportar.
const exportBatch = 500

// ExportUseCase exportes de cuentas por pagar (XLSX del listado, PDF de la nota de débito).
type ExportUseCase struct {
	facturas    *FacturaUseCase
	facturaRepo repository.FacturaRepository
	companyRepo repository.CompanyRepository
	xlsx        FacturasXLSXGenerator
	pdf         NotaDebitoPDFGenerator
}

// NewExportUseCase construye el caso de uso. xlsx o pdf pueden ser nil si el binario no los usa.
func NewExportUseCase(
	facturas *FacturaUseCase,
	facturaRepo repository.FacturaRepository,
	companyRepo repository.CompanyRepository,
	xlsx FacturasXLSXGenerator,
	pdf NotaDebitoPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		facturas:    facturas,
		facturaRepo: facturaRepo,
		companyRepo: companyRepo,
		xlsx:        xlsx,
		pdf:         pdf,
	}
}

// ExportFacturasXLSX genera la hoja con todas las facturas que cumplen el filtro.
func (uc *ExportUseCase) ExportFacturasXLSX(ctx context.Context, companyID string, filtro entity.FacturaFiltro) ([]byte, error) {
	if uc.xlsx == nil {
		return nil, fmt.Errorf("exporte xlsx no configurado")
	}
	var rows []FacturaExportRow
	for offset := 0; ; offset += exportBatch {
		facturas, total, err := uc.facturaRepo.List(ctx, companyID, filtro, exportBatch, offset)
		if err != nil {
			return nil, err
		}
		enriquecidas, err := uc.facturas.enriquecer(ctx, facturas)
		if err != nil {
			return nil, err
		}
		for _, r := range enriquecidas {
			rows = append(rows, FacturaExportRow{
				Factura:          r.factura,
				TotalNotaCredito: diferencial.SumaTotal(r.notas),
				NotaDebito:       r.notaDebito,
				MontoFinal:       diferencial.CalcularMontoFinalPagar(r.factura, r.notas, r.notaDebito),
			})
		}
		if len(facturas) < exportBatch || offset+len(facturas) >= total {
			break
		}
	}
	return uc.xlsx.GenerateFacturasXLSX(ctx, rows)
}

// NotaDebitoPDF genera el PDF de la nota de débito con los datos de la empresa emisora.
func (uc *ExportUseCase) NotaDebitoPDF(ctx context.Context, companyID, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador pdf no configurado")
	}
	nd, err := uc.facturas.notaDebitoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nd == nil {
		return nil, domain.ErrNotFound
	}
	if nd.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	f, err := uc.facturaRepo.GetByID(ctx, nd.FacturaID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	notas, err := uc.facturas.notaCreditoRepo.ListByFactura(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateNotaDebitoPDF(ctx, nd, f, filtrarNotas(notas, nd.NotasCreditoIDs), company)
}
