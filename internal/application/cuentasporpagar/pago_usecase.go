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
)

// PagoUseCase pago de facturas y notas de débito por diferencial cambiario.
type PagoUseCase struct {
	facturaRepo     repository.FacturaRepository
	notaCreditoRepo repository.NotaCreditoRepository
	notaDebitoRepo  repository.NotaDebitoRepository
	txRunner        PagoTxRunner
	log             *logger.Logger
	now             func() time.Time
}

// NewPagoUseCase construye el caso de uso. txRunner es obligatorio para RegistrarPago.
func NewPagoUseCase(
	facturaRepo repository.FacturaRepository,
	notaCreditoRepo repository.NotaCreditoRepository,
	notaDebitoRepo repository.NotaDebitoRepository,
	txRunner PagoTxRunner,
	log *logger.Logger,
) *PagoUseCase {
	return &PagoUseCase{
		facturaRepo:     facturaRepo,
		notaCreditoRepo: notaCreditoRepo,
		notaDebitoRepo:  notaDebitoRepo,
		txRunner:        txRunner,
		log:             log.WithComponent("cuentasporpagar"),
		now:             time.Now,
	}
}

// PreviewNotaDebito calcula la nota de débito que generaría pagar la factura a tasaPago, sin persistir.
func (uc *PagoUseCase) PreviewNotaDebito(ctx context.Context, companyID, facturaID string, tasaPago decimal.Decimal) (*dto.NotaDebitoResponse, error) {
	f, err := cargarFactura(ctx, uc.facturaRepo, companyID, facturaID)
	if err != nil {
		return nil, err
	}
	notas, err := uc.notaCreditoRepo.ListByFactura(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	calc, err := diferencial.CalcularNotaDebito(f, notas, tasaPago)
	if err != nil {
		return nil, err
	}
	nd := &entity.NotaDebito{FacturaID: f.ID, NotasCreditoIDs: notaCreditoIDs(notas)}
	calc.AplicarA(nd)
	out := toNotaDebitoResponse(nd)
	return &out, nil
}

// RegistrarPago genera la nota de débito y marca la factura como pagada en una sola transacción.
// Con una tasa inválida no se persiste nada.
func (uc *PagoUseCase) RegistrarPago(ctx context.Context, companyID, userID, facturaID string, in dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	if !in.TasaCambioPago.IsPositive() {
		return nil, &diferencial.InvalidRateError{Campo: "tasa_cambio_pago", Valor: in.TasaCambioPago}
	}
	now := uc.now()
	fecha := now
	if in.Fecha != nil && !in.Fecha.IsZero() {
		fecha = *in.Fecha
	}

	var out *dto.PagoResponse
	err := uc.txRunner.RunPago(ctx, func(facturaRepo repository.FacturaRepository, notaCreditoRepo repository.NotaCreditoRepository, notaDebitoRepo repository.NotaDebitoRepository) error {
		f, err := cargarFactura(ctx, facturaRepo, companyID, facturaID)
		if err != nil {
			return err
		}
		if f.Estado == entity.FacturaPagada {
			return fmt.Errorf("%w: la factura %s ya fue pagada", domain.ErrConflict, f.Numero)
		}
		notas, err := notaCreditoRepo.ListByFactura(ctx, f.ID)
		if err != nil {
			return err
		}
		calc, err := diferencial.CalcularNotaDebito(f, notas, in.TasaCambioPago)
		if err != nil {
			return err
		}

		numero := strings.TrimSpace(in.Numero)
		if numero == "" {
			numero, err = notaDebitoRepo.NextNumero(ctx, companyID)
			if err != nil {
				return fmt.Errorf("consecutivo nota de débito: %w", err)
			}
		}
		nd := &entity.NotaDebito{
			ID:              uuid.New().String(),
			CompanyID:       companyID,
			FacturaID:       f.ID,
			Numero:          numero,
			Fecha:           fecha,
			NotasCreditoIDs: notaCreditoIDs(notas),
			CreatedBy:       userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		calc.AplicarA(nd)
		if err := notaDebitoRepo.Create(ctx, nd); err != nil {
			return err
		}
		if err := facturaRepo.UpdateEstado(ctx, f.ID, entity.FacturaPagada, now); err != nil {
			return err
		}
		f.Estado = entity.FacturaPagada

		out = &dto.PagoResponse{
			FacturaID:  f.ID,
			Estado:     f.Estado,
			NotaDebito: toNotaDebitoResponse(nd),
			MontoFinal: diferencial.CalcularMontoFinalPagar(f, notas, nd),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("factura_id", facturaID).
		Str("nota_debito_id", out.NotaDebito.ID).
		Str("diferencial", out.NotaDebito.DiferencialCambiarioConIVA.StringFixed(2)).
		Msg("pago registrado")
	return out, nil
}

// GetNotaDebito devuelve la nota de débito si pertenece a la empresa.
func (uc *PagoUseCase) GetNotaDebito(ctx context.Context, companyID, id string) (*dto.NotaDebitoResponse, error) {
	nd, err := uc.cargarNotaDebito(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	out := toNotaDebitoResponse(nd)
	return &out, nil
}

// UpdateNotaDebito edita fecha y/o tasa de pago. Un cambio de tasa recalcula todos los montos
// con la factura y las notas de crédito que tenía la nota al generarse.
func (uc *PagoUseCase) UpdateNotaDebito(ctx context.Context, companyID, id string, in dto.UpdateNotaDebitoRequest) (*dto.NotaDebitoResponse, error) {
	if in.Fecha == nil && in.TasaCambioPago == nil {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}
	nd, err := uc.cargarNotaDebito(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Fecha != nil {
		if in.Fecha.IsZero() {
			return nil, fmt.Errorf("%w: fecha requerida", domain.ErrInvalidInput)
		}
		nd.Fecha = *in.Fecha
	}
	if in.TasaCambioPago != nil {
		f, err := uc.facturaRepo.GetByID(ctx, nd.FacturaID)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, domain.ErrNotFound
		}
		notas, err := uc.notaCreditoRepo.ListByFactura(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		calc, err := diferencial.CalcularNotaDebito(f, filtrarNotas(notas, nd.NotasCreditoIDs), *in.TasaCambioPago)
		if err != nil {
			return nil, err
		}
		calc.AplicarA(nd)
	}
	nd.UpdatedAt = uc.now()
	if err := uc.notaDebitoRepo.Update(ctx, nd); err != nil {
		return nil, err
	}

	uc.log.Info().Str("nota_debito_id", nd.ID).Str("tasa_cambio_pago", nd.TasaCambioPago.String()).Msg("nota de débito actualizada")
	out := toNotaDebitoResponse(nd)
	return &out, nil
}

func (uc *PagoUseCase) cargarNotaDebito(ctx context.Context, companyID, id string) (*entity.NotaDebito, error) {
	nd, err := uc.notaDebitoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nd == nil {
		return nil, domain.ErrNotFound
	}
	if nd.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return nd, nil
}

func cargarFactura(ctx context.Context, repo repository.FacturaRepository, companyID, id string) (*entity.Factura, error) {
	f, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return f, nil
}

// filtrarNotas conserva solo las notas referenciadas por la nota de débito.
func filtrarNotas(notas []*entity.NotaCredito, ids []string) []*entity.NotaCredito {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]*entity.NotaCredito, 0, len(ids))
	for _, nc := range notas {
		if _, ok := set[nc.ID]; ok {
			out = append(out, nc)
		}
	}
	return out
}
